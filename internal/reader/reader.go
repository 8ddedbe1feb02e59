// Package reader drains the input stream into a single in-memory buffer.
package reader

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
)

// ReadAll consumes r until end-of-stream and returns every byte seen.
// The buffer is owned by the caller; r is left fully consumed.
func ReadAll(r io.Reader) ([]byte, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	log.Debug().Int("bytes", len(buf)).Msg("input consumed")
	return buf, nil
}
