package auth

import (
	"crypto/sha256"
	"crypto/subtle"

	"leafsmp/internal/shared/config"
)

type credential struct {
	username     string
	password     string
	passwordHash string
}

// CredentialStore holds the configured staff logins. Lookups take roughly
// the same time whether or not the username exists.
type CredentialStore struct {
	entries []credential
	hasher  *BcryptPasswordHasher
}

func NewCredentialStore(admins []config.AdminCredentialConfig, hasher *BcryptPasswordHasher) *CredentialStore {
	entries := make([]credential, 0, len(admins))
	for _, a := range admins {
		entries = append(entries, credential{
			username:     a.Username,
			password:     a.Password,
			passwordHash: a.PasswordHash,
		})
	}
	return &CredentialStore{entries: entries, hasher: hasher}
}

func (s *CredentialStore) Len() int {
	return len(s.entries)
}

// Verify matches username exactly (case-sensitive). A bcrypt password_hash
// takes precedence over a plaintext password.
func (s *CredentialStore) Verify(username, password string) bool {
	var match *credential
	for i := range s.entries {
		if constantTimeEqual(s.entries[i].username, username) && match == nil {
			match = &s.entries[i]
		}
	}
	if match == nil {
		// Burn comparable time on unknown usernames.
		constantTimeEqual(password, password)
		return false
	}

	if match.passwordHash != "" {
		return s.hasher.Verify(password, match.passwordHash) == nil
	}
	return constantTimeEqual(match.password, password)
}

// constantTimeEqual compares fixed-size digests so length differences do
// not leak through timing.
func constantTimeEqual(a, b string) bool {
	ha := sha256.Sum256([]byte(a))
	hb := sha256.Sum256([]byte(b))
	return subtle.ConstantTimeCompare(ha[:], hb[:]) == 1
}
