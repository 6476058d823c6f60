package auth

import "golang.org/x/crypto/bcrypt"

// ComparePassword verifies a password against its hashed value. bcrypt's
// comparison is constant-time over the hash.
func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
