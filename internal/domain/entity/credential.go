package entity

import (
	"database/sql/driver"

	"github.com/pkg/errors"

	"recipebox/internal/domain/service"
)

// Credential is an opaque, write-only password credential. It stores only the
// salted hash produced by a PasswordHasher and deliberately exposes no getter:
// the hash can be set, verified against, and persisted, never read back as a
// plain attribute.
type Credential struct {
	hash string
}

// Set hashes the plaintext password and stores the result. The plaintext is
// not retained after Set returns.
func (c *Credential) Set(plaintext string, hasher service.PasswordHasher) error {
	hash, err := hasher.Hash(plaintext)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}
	c.hash = hash

	return nil
}

// Verify reports whether the candidate password matches the stored hash.
func (c Credential) Verify(candidate string, hasher service.PasswordHasher) bool {
	if c.hash == "" {
		return false
	}

	return hasher.Check(candidate, c.hash)
}

// Empty reports whether a credential has been set.
func (c Credential) Empty() bool {
	return c.hash == ""
}

// Value implements driver.Valuer so the stored hash reaches the database
// without a public accessor on the type.
func (c Credential) Value() (driver.Value, error) {
	return c.hash, nil
}

// Scan implements sql.Scanner for loading the stored hash from the database.
func (c *Credential) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		c.hash = ""
	case string:
		c.hash = v
	case []byte:
		c.hash = string(v)
	default:
		return errors.Errorf("cannot scan %T into Credential", src)
	}

	return nil
}

// String redacts the hash so it never leaks through logging or formatting.
func (c Credential) String() string {
	return "[REDACTED]"
}

// GoString redacts the hash from %#v formatting as well.
func (c Credential) GoString() string {
	return "entity.Credential{hash: [REDACTED]}"
}

// MarshalJSON refuses to serialize the credential. Callers building API
// responses must go through the usecase output DTOs, which omit it entirely.
func (c Credential) MarshalJSON() ([]byte, error) {
	return nil, errors.New("password credentials may not be serialized")
}
