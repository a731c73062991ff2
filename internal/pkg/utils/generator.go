package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"clinic-service/internal/pkg/constvars"
)

// GenerateOTP produces a zero-padded numeric one-time password.
func GenerateOTP() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < constvars.OTPLength; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", constvars.OTPLength, n), nil
}
