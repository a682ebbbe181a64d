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
	tests := []struct {
		name  string
		input string
		def   string
		want  string
	}{
		{"plain line", "hello world\n", "", "hello world"},
		{"eof after text", "lastline", "", "lastline"},
		{"empty takes default", "\n", "report.pdf", "report.pdf"},
		{"eof takes default", "", "docs", "docs"},
		{"answer beats default", "  other.pdf \n", "report.pdf", "other.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetSimpleText(rdr(tt.input), "Name?", tt.def, &out)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			if tt.def != "" {
				require.Contains(t, out.String(), "["+tt.def+"]")
			}
		})
	}
}

func TestConfirm(t *testing.T) {
	for input, want := range map[string]bool{
		"y\n":    true,
		"YES\n":  true,
		"n\n":    false,
		"\n":     false,
		"":       false,
		"sure\n": false,
	} {
		var out bytes.Buffer
		got, err := Confirm(rdr(input), "Delete a.txt?", &out)
		require.NoError(t, err)
		require.Equal(t, want, got, "input %q", input)
	}
}

func TestGetToken(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })

	readPassword = func(int) ([]byte, error) { return []byte(" tok \n"), nil }
	var out bytes.Buffer
	tok, err := GetToken(&out)
	require.NoError(t, err)
	require.Equal(t, "tok", tok)
	require.Contains(t, out.String(), "Enter access token")

	readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }
	_, err = GetToken(&out)
	require.Error(t, err)
}
