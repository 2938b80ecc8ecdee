package bookings

import (
	"crypto/rand"
	"math/big"
)

const (
	referenceLength  = 8
	referenceCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// GenerateReference produces an 8 character booking number drawn from
// uppercase letters and digits. The space is ~2.8e12 references, so
// collisions are rare but possible; the caller retries on a primary key
// conflict rather than checking first.
func GenerateReference() (string, error) {
	ref := make([]byte, referenceLength)
	max := big.NewInt(int64(len(referenceCharset)))

	for i := range ref {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		ref[i] = referenceCharset[num.Int64()]
	}

	return string(ref), nil
}
