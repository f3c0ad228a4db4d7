package auth

import (
	"crypto/subtle"

	"praxida/internal/models"
)

// Demo credentials for the bundled frontend. There is no user store.
const (
	demoUsername = "demo"
	demoPassword = "praxida2024"
)

// Service validates the demo login.
type Service struct{}

// NewService constructs the auth service.
func NewService() *Service {
	return &Service{}
}

// Authenticate checks the supplied credentials in constant time and returns
// the demo profile on success. Unknown user and wrong password are not
// distinguished.
func (s *Service) Authenticate(username, password string) (*models.User, bool) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(demoUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(demoPassword)) == 1
	if !userOK || !passOK {
		return nil, false
	}
	return &models.User{
		Username:    demoUsername,
		DisplayName: "Demo User",
		Initials:    "DU",
		Role:        "therapist",
	}, true
}
