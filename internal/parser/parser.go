// Package parser tokenizes the input buffer and folds it into a checked
// 64-bit sum.
package parser

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/rs/zerolog/log"
)

// ErrOverflow reports an addition whose true result cannot be represented
// in the signed 64-bit range.
var ErrOverflow = errors.New("sum overflows int64")

// TokenError reports a token that is not a valid base-10 signed 64-bit
// integer literal. Position is 1-based, in order of appearance.
type TokenError struct {
	Token    string
	Position int
	Err      error
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("token %d: %q is not a valid integer", e.Position, e.Token)
}

func (e *TokenError) Unwrap() error { return e.Err }

// Sum splits buf into maximal runs of non-whitespace bytes, parses each run
// as a base-10 int64 and returns their sum. Whitespace of any kind is a pure
// delimiter, so empty tokens never occur and an all-whitespace (or empty)
// buffer sums to 0.
//
// The fold is left-to-right and eager: the first invalid token or
// overflowing addition aborts with no partial result.
func Sum(buf []byte) (int64, error) {
	tokens := bytes.Fields(buf)

	var sum int64
	for i, tok := range tokens {
		v, err := strconv.ParseInt(string(tok), 10, 64)
		if err != nil {
			return 0, &TokenError{Token: string(tok), Position: i + 1, Err: err}
		}

		sum, err = addChecked(sum, v)
		if err != nil {
			return 0, err
		}
	}

	log.Debug().Int("tokens", len(tokens)).Int64("sum", sum).Msg("input summed")
	return sum, nil
}

func addChecked(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, fmt.Errorf("adding %d to %d: %w", b, a, ErrOverflow)
	}
	return a + b, nil
}
