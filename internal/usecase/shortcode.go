package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// ShortCodeLength is the number of hex characters kept from the digest.
const ShortCodeLength = 8

// DeriveShortCode returns the first ShortCodeLength hex characters of
// sha256(originalURL + apiToken). The same pair always yields the same code,
// and different tokens namespace the same URL apart.
//
// Attempts above zero salt the input with "#<attempt>"; they are used only
// when the first code already belongs to another URL or owner.
func DeriveShortCode(originalURL, apiToken string, attempt int) string {
	input := originalURL + apiToken
	if attempt > 0 {
		input += "#" + strconv.Itoa(attempt)
	}

	sum := sha256.Sum256([]byte(input))

	return hex.EncodeToString(sum[:])[:ShortCodeLength]
}
