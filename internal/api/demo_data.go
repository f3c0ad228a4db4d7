package api

import (
	"time"

	"praxida/internal/models"
)

// Demo records backing the client and therapy-plan endpoints. There is no
// client database; the payloads are fixed for the lifetime of the process.

func demoClients() []models.Client {
	return []models.Client{
		{
			ID:           "client1",
			Initials:     "A.M.",
			Diagnosis:    "Angststörung",
			Therapy:      "VT",
			LastSession:  "2025-08-18",
			SessionCount: 12,
			Status:       "aktiv",
		},
		{
			ID:           "client2",
			Initials:     "B.S.",
			Diagnosis:    "Depression",
			Therapy:      "TPT",
			LastSession:  "2025-08-20",
			SessionCount: 8,
			Status:       "aktiv",
		},
	}
}

func demoTherapyPlans(created time.Time) []models.TherapyPlan {
	return []models.TherapyPlan{
		{
			ID:       "plan1",
			ClientID: "client1",
			Title:    "Kognitiv-behaviorale Therapie - A.M.",
			Status:   "active",
			Goals: []string{
				"Reduktion der Angstsymptomatik um 50%",
				"Verbesserung der sozialen Kompetenz",
				"Entwicklung von Bewältigungsstrategien",
			},
			NextSteps: []string{
				"Exposition in vivo (Woche 8-10)",
				"Kognitive Umstrukturierung vertiefen",
				"Rückfallprophylaxe planen",
			},
			Created: created,
		},
	}
}
