// SPDX-License-Identifier: MPL-2.0

package bundle

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Digest returns the hex BLAKE3 hash of an ordered file list. Each path is
// terminated by a NUL byte, so ["ab"] and ["a", "b"] hash differently.
func Digest(files []string) string {
	h := blake3.New()
	for _, f := range files {
		_, _ = h.WriteString(f)
		_, _ = h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
