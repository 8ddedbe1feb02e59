package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasiopea-org/sumjson/internal/parser"
)

// executeSum runs the root command against the given stdin contents and
// returns whatever was written to stdout.
func executeSum(t *testing.T, input string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{})

	err := rootCmd.Execute()
	return out.String(), err
}

func Test_SumPipeline(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "space separated",
			input:    "1 2 3",
			expected: "6\n",
		},
		{
			name:     "negatives cancel",
			input:    "-5 5",
			expected: "0\n",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "0\n",
		},
		{
			name:     "newline separated",
			input:    "10\n20\n30",
			expected: "60\n",
		},
		{
			name:     "whitespace only",
			input:    " \t \n ",
			expected: "0\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := executeSum(t, tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func Test_SumPipeline_Idempotent(t *testing.T) {
	first, err := executeSum(t, "4 -1 7")
	require.NoError(t, err)

	second, err := executeSum(t, "4 -1 7")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func Test_SumPipeline_ParseError(t *testing.T) {
	out, err := executeSum(t, "abc")
	require.Error(t, err)

	var tokErr *parser.TokenError
	assert.ErrorAs(t, err, &tokErr)
	assert.Empty(t, out, "no output line may be written on failure")
}

func Test_SumPipeline_Overflow(t *testing.T) {
	out, err := executeSum(t, "9223372036854775807 1")
	require.ErrorIs(t, err, parser.ErrOverflow)
	assert.Empty(t, out, "no output line may be written on failure")
}

func Test_SumPipeline_InputIOError(t *testing.T) {
	cause := errors.New("stream error")

	var out bytes.Buffer
	rootCmd.SetIn(&failingReader{err: cause})
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{})

	err := rootCmd.Execute()
	require.ErrorIs(t, err, cause)
	assert.Empty(t, out.String())
}

func Test_SumPipeline_RejectsArgs(t *testing.T) {
	rootCmd.SetIn(strings.NewReader("1 2"))
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"numbers.txt"})

	err := rootCmd.Execute()
	require.Error(t, err)
}

type failingReader struct {
	err error
}

func (r *failingReader) Read(p []byte) (int, error) {
	return 0, r.err
}
