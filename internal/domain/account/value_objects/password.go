package value_objects

import "fmt"

const minPasswordLength = 6

// Password represents a plaintext password that passed policy validation.
// It only lives long enough to be hashed; it is never persisted.
type Password struct {
	value string
}

// NewPassword validates a plaintext password against the policy.
func NewPassword(value string) (*Password, error) {
	if len(value) < minPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return &Password{value: value}, nil
}

// String returns the plaintext value for hashing.
func (p *Password) String() string {
	return p.value
}
