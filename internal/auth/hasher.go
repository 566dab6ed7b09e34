package auth

import "golang.org/x/crypto/bcrypt"

// HashCost is the bcrypt work factor. 12 keeps an interactive login under a
// second on commodity hardware while staying expensive for offline guessing.
const HashCost = 12

// Hasher hashes and verifies passwords. Hashing is one-way and salted: two
// hashes of the same plaintext differ, and there is no way back from a hash
// to the plaintext.
type Hasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}

// BcryptHasher is the production Hasher. A zero Cost falls back to HashCost.
type BcryptHasher struct {
	Cost int
}

func NewHasher() BcryptHasher { return BcryptHasher{Cost: HashCost} }

func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = HashCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Check reports whether password matches hash. A mismatch is false, never an
// error.
func (h BcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
