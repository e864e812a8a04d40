package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	in := rdr("hello world\n")
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Name?", &out)
	if err != nil || got != "hello world" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	in := rdr("lastline")
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	_, err := GetPassword(&out)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGetChoice(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{
			name:     "first option",
			input:    "1\n",
			expected: 0,
		},
		{
			name:     "last option",
			input:    "3\n",
			expected: 2,
		},
		{
			name:     "re-prompts on non-numeric answer",
			input:    "abc\n2\n",
			expected: 1,
		},
		{
			name:     "re-prompts on out-of-range answer",
			input:    "0\n4\n3\n",
			expected: 2,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetChoice(rdr(tc.input), "Pick one", []string{"a", "b", "c"}, &out)
			require.NoError(t, err)
			require.Equal(t, tc.expected, got)
		})
	}
}

func TestGetAmount(t *testing.T) {
	var out bytes.Buffer
	got, err := GetAmount(rdr("500.50\n"), "Amount", &out)
	require.NoError(t, err)
	require.Equal(t, 500.50, got)
}

func TestGetAmount_RejectsNonPositive(t *testing.T) {
	var out bytes.Buffer
	got, err := GetAmount(rdr("-5\n0\nnope\n250\n"), "Amount", &out)
	require.NoError(t, err)
	require.Equal(t, 250.0, got)
}
