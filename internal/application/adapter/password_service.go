package adapter

// PasswordService defines the interface for password hashing, verification
// and strength validation.
type PasswordService interface {
	// HashPassword derives a salted hash from a plaintext password. It
	// returns the hash and the freshly generated random salt.
	HashPassword(password string) (hash, salt []byte, err error)

	// VerifyPassword re-derives a hash from the candidate password and the
	// stored salt and compares it to the stored hash in constant time.
	VerifyPassword(password string, hash, salt []byte) bool

	// ValidatePasswordStrength validates composition rules on a plaintext
	// password before hashing.
	ValidatePasswordStrength(password string) error
}
