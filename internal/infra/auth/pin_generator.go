package auth

import (
	"crypto/rand"
	"math/big"
	"strconv"

	"carttrace/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	pinMin = 100000
	pinMax = 999999
)

// randomPinGenerator draws six-digit PINs from crypto/rand.
type randomPinGenerator struct{}

// NewPinGenerator is the constructor for randomPinGenerator.
func NewPinGenerator() service.PinGenerator {
	return &randomPinGenerator{}
}

// Generate returns a PIN in [100000, 999999], so it is always six digits.
func (g *randomPinGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(pinMax-pinMin+1))
	if err != nil {
		return "", errors.Wrap(err, "generate pin")
	}

	return strconv.FormatInt(n.Int64()+pinMin, 10), nil
}
