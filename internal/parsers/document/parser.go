// Package document parses self-describing structured payloads (JSON)
// wholesale into typed record sequences. Decoding is all-or-nothing:
// an invalid payload or a shape mismatch fails the entire parse.
package document

import (
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/datakit-cli/internal/core/domain"
)

// Records decodes the whole payload as a JSON array of T.
// On failure the returned error wraps domain.ErrParse and carries the
// decoder's diagnostic; no partial result is ever returned.
func Records[T any](data []byte) ([]T, error) {
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: failed to parse json: %v", domain.ErrParse, err)
	}
	return out, nil
}
