package flow

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Fingerprint returns a deterministic digest of every draft field, used to
// detect repeat submissions. encoding/json emits struct fields in
// declaration order, so identical drafts always hash identically.
func Fingerprint(d Draft) string {
	raw, err := json.Marshal(d)
	if err != nil {
		// Draft contains only strings and slices — Marshal cannot fail.
		panic(err)
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
