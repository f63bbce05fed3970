package utils

import (
	"net/mail"
	"sync/atomic"

	"golang.org/x/crypto/bcrypt"
)

var hashCost atomic.Int64

func init() {
	hashCost.Store(12)
}

// SetHashCost changes the bcrypt cost used by HashPassword. Values outside
// bcrypt's accepted range are clamped by bcrypt itself.
func SetHashCost(cost int) {
	hashCost.Store(int64(cost))
}

// HashPassword hashes a plain password using bcrypt.
func HashPassword(password string) (string, error) {
	return hashPassword(password)
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), int(hashCost.Load()))
	return string(bytes), err
}

// CheckPasswordHash compares a plain password with a bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IsEmail returns true if the string is a valid email address.
func IsEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}
