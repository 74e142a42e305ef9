// Package claimcode generates the short numeric codes attached to rewards.
package claimcode

import (
	"crypto/rand"
	"math/big"

	"github.com/pkg/errors"

	"loyallink/internal/domain/service"
)

// codeSpace is the number of distinct 6-digit codes, [100000, 999999].
const (
	codeMin   = 100000
	codeSpace = 900000
)

type generator struct{}

// NewGenerator returns a ClaimCodeGenerator backed by crypto/rand. Codes are
// uniform over the 6-digit range so leading zeros never occur and no code is
// more likely than another.
func NewGenerator() service.ClaimCodeGenerator {
	return &generator{}
}

// Generate returns a new 6-digit claim code.
func (g *generator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpace))
	if err != nil {
		return "", errors.Wrap(err, "read random claim code")
	}

	return big.NewInt(codeMin + n.Int64()).String(), nil
}
