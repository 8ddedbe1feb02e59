package reader

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct {
	err error
}

func (r *failingReader) Read(p []byte) (int, error) {
	return 0, r.err
}

func TestReadAll(t *testing.T) {
	buf, err := ReadAll(strings.NewReader("1 2 3\n"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1 2 3\n"), buf)
}

func TestReadAll_Empty(t *testing.T) {
	buf, err := ReadAll(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, buf)
}

func TestReadAll_PropagatesIOError(t *testing.T) {
	cause := errors.New("broken pipe")

	_, err := ReadAll(&failingReader{err: cause})
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "reading input")
}
