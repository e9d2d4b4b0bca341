package password

import (
	"github.com/spf13/cast"      // Loose type coercion
	"golang.org/x/crypto/bcrypt" // Password hashing
)

// Verifier checks a submitted plaintext against a stored credential whose
// type is not guaranteed (legacy admin rows hold plain strings or numbers).
// Verify never panics on a type mismatch.
type Verifier interface {
	Verify(plain string, stored any) bool
}

// Hash produces a salted bcrypt hash of a plaintext password.
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Hashed verifies against a bcrypt hash. Used for all customer accounts.
type Hashed struct{}

func (Hashed) Verify(plain string, stored any) bool {
	return bcrypt.CompareHashAndPassword([]byte(cast.ToString(stored)), []byte(plain)) == nil
}

// CoercedEqual compares the string rendering of the stored value with the
// submitted plaintext. This is the legacy admin policy: some deployments
// store admin passwords as plaintext or even as numbers. Insecure, kept only
// for compatibility with existing records.
type CoercedEqual struct{}

func (CoercedEqual) Verify(plain string, stored any) bool {
	return cast.ToString(stored) == plain
}

// ForPolicy maps a configured policy name to a Verifier. "bcrypt" selects
// the hashed policy; anything else falls back to the legacy coerced-equality
// policy, matching the deployments this replaces.
func ForPolicy(name string) Verifier {
	if name == "bcrypt" {
		return Hashed{}
	}
	return CoercedEqual{}
}
