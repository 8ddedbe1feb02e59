// Package writer serializes the final sum as a standalone JSON document.
package writer

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteSum writes sum to w as a bare JSON number followed by exactly one
// newline. A bare number is a valid JSON document, so the output can be fed
// straight into any JSON consumer.
func WriteSum(w io.Writer, sum int64) error {
	if err := json.NewEncoder(w).Encode(sum); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}
