package util

import (
	"crypto/rand"
	"math/big"
)

// GenerateNumericOTP returns a code of independently drawn decimal digits.
// Repeats and leading zeros are allowed; the code is a string, never a number.
func GenerateNumericOTP(digits int) (string, error) {
	if digits <= 0 {
		digits = 6
	}
	code := make([]byte, digits)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code[i] = byte('0' + n.Int64())
	}
	return string(code), nil
}
