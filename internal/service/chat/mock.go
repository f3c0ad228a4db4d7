package chat

import "strings"

// Canned German replies served whenever no LLM credential is configured or
// the upstream call fails.
const (
	mockGreeting = "Hallo! Ich bin Ihre KI-Assistenz für therapeutische Fragen. Wie kann ich Ihnen heute helfen?"

	mockTherapy = "Das ist eine interessante therapeutische Fragestellung. Hier sind einige Überlegungen dazu:\n\n" +
		"• Verhaltenstherapeutische Ansätze könnten hilfreich sein\n" +
		"• Wichtig ist eine gründliche Anamnese\n" +
		"• Berücksichtigen Sie auch systemische Faktoren\n\n" +
		"Wie schätzen Sie die Situation ein?"

	mockAnalysis = "**Analyse-Ergebnis:**\n\n" +
		"Based auf den bereitgestellten Informationen kann ich folgende therapeutische Hinweise geben:\n\n" +
		"• Strukturierte Herangehensweise empfohlen\n" +
		"• Berücksichtigung des biopsychosozialen Modells\n" +
		"• Regelmäßige Evaluation des Behandlungsfortschritts\n\n" +
		"*Diese Einschätzung ersetzt nicht Ihre professionelle Beurteilung.*"

	mockPlanning = "Für die Therapieplanung sollten Sie folgende Aspekte berücksichtigen:\n\n" +
		"1. **Zielsetzung:** Klare, messbare Therapieziele definieren\n" +
		"2. **Methodik:** Evidenzbasierte Interventionen auswählen\n" +
		"3. **Verlaufskontrolle:** Regelmäßige Evaluierung einplanen\n\n" +
		"Welchen spezifischen Bereich möchten Sie vertiefen?"

	mockDocumentation = "Für die Dokumentation empfehle ich:\n\n" +
		"• Strukturierte Protokollführung\n" +
		"• DSGVO-konforme Datenspeicherung\n" +
		"• Regelmäßige Backup-Strategie\n" +
		"• Klare Einverständniserklärungen\n\n" +
		"Gibt es spezielle Dokumentationsanforderungen in Ihrem Fall?"
)

// keyword sets, checked in priority order
var (
	greetingWords      = []string{"hallo", "hi"}
	therapyWords       = []string{"therapie", "behandlung"}
	planningWords      = []string{"plan", "ziel"}
	documentationWords = []string{"dokument", "protokoll"}
)

func containsAny(message string, words []string) bool {
	for _, w := range words {
		if strings.Contains(message, w) {
			return true
		}
	}
	return false
}

// MockReply maps a message to one of the canned replies. Attachments always
// win; otherwise the first matching keyword set decides. Unmatched messages
// deliberately get the therapy reply.
func MockReply(message string, hasAttachments bool) string {
	if hasAttachments {
		return mockAnalysis
	}
	lower := strings.ToLower(message)
	switch {
	case containsAny(lower, greetingWords):
		return mockGreeting
	case containsAny(lower, therapyWords):
		return mockTherapy
	case containsAny(lower, planningWords):
		return mockPlanning
	case containsAny(lower, documentationWords):
		return mockDocumentation
	}
	return mockTherapy
}
