package cryptox

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// OTPDigits is the width of email verification codes.
const OTPDigits = 6

var otpMax = big.NewInt(1000000)

// GenerateOTP returns a zero-padded 6-digit numeric code from crypto/rand.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, otpMax)
	if err != nil {
		return "", fmt.Errorf("failed to generate otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
