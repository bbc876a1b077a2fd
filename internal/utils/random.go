package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	digits          = "0123456789"
	letters         = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	specials        = "!@#$%^&*?"
	passwordCharset = letters + digits + specials
)

// GenerateNumericCode returns a random string of length decimal digits.
func GenerateNumericCode(length int) (string, error) {
	return randomFrom(digits, length)
}

// GeneratePassword returns a random password of length characters that
// contains at least one letter, one digit and one special character.
// length must be at least 3.
func GeneratePassword(length int) (string, error) {
	if length < 3 {
		return "", fmt.Errorf("password length %d is too short", length)
	}

	required := make([]byte, 0, length)
	for _, set := range []string{letters, digits, specials} {
		s, err := randomFrom(set, 1)
		if err != nil {
			return "", err
		}
		required = append(required, s[0])
	}

	rest, err := randomFrom(passwordCharset, length-len(required))
	if err != nil {
		return "", err
	}

	out := append(required, rest...)
	for i := len(out) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", fmt.Errorf("error shuffling password: %w", err)
		}
		out[i], out[j.Int64()] = out[j.Int64()], out[i]
	}
	return string(out), nil
}

func randomFrom(charset string, length int) (string, error) {
	out := make([]byte, length)
	limit := big.NewInt(int64(len(charset)))
	for i := range out {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("error generating random value: %w", err)
		}
		out[i] = charset[n.Int64()]
	}
	return string(out), nil
}
