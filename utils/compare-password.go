package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// ComparePass checks a submitted password against the configured bcrypt
// hash. Timing safety is bcrypt's job.
func ComparePass(password, hashPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashPassword), []byte(password))
}
