// Package password is the credential codec: a thin wrapper around bcrypt that
// keeps hashing policy (cost) in one place.
package password

import "golang.org/x/crypto/bcrypt"

// Codec hashes and verifies passwords. The zero value uses bcrypt.DefaultCost.
type Codec struct {
	Cost int
}

// Hash produces a salted one-way digest of plaintext. bcrypt embeds a fresh
// random salt, so hashing the same plaintext twice yields different digests.
func (c Codec) Hash(plaintext string) (string, error) {
	cost := c.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored hash. Malformed hashes
// verify as false rather than erroring; comparison is constant-time inside
// bcrypt.
func (c Codec) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
