// Package session resolves the opaque client-correlation token attached to
// preference submissions.
package session

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// suffixAlphabet matches the base36 alphabet used for generated session
// suffixes.
const suffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// suffixLength is the number of random characters appended to generated ids.
const suffixLength = 9

// Resolve picks the session identifier for a submission. An explicit id from
// the request body wins, then the X-Session-Id header; both are used
// unchanged, with no format or uniqueness checks. When neither is present a
// fresh id is generated.
func Resolve(bodyID, headerID string) string {
	if bodyID != "" {
		return bodyID
	}
	if headerID != "" {
		return headerID
	}
	return Generate()
}

// Generate returns a new session id of the form
// session_<unix-millis>_<9 random base36 characters>. Collisions are
// vanishingly unlikely and treated as acceptable; no uniqueness is enforced.
func Generate() string {
	suffix := make([]byte, suffixLength)
	for i := range suffix {
		suffix[i] = suffixAlphabet[rand.IntN(len(suffixAlphabet))]
	}
	return fmt.Sprintf("session_%d_%s", time.Now().UnixMilli(), suffix)
}
