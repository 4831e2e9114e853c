package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func stubTerminal(t *testing.T, tty bool, pw []byte, err error) {
	t.Helper()
	oldRead, oldTTY := readPassword, isTerminal
	t.Cleanup(func() { readPassword, isTerminal = oldRead, oldTTY })
	isTerminal = func(int) bool { return tty }
	readPassword = func(int) ([]byte, error) { return pw, err }
}

func TestGetSimpleText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"line", "ada@jabu.edu.ng\nrest\n", "ada@jabu.edu.ng"},
		{"surrounding spaces trimmed", "  CSC 201 \r\n", "CSC 201"},
		{"partial line before EOF", "lastline", "lastline"},
		{"empty line", "\n", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetSimpleText(rdr(tc.input), "Email", &out)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, "Email\n> ", out.String())
		})
	}
}

func TestGetSimpleText_EOF(t *testing.T) {
	_, err := GetSimpleText(rdr(""), "Email", io.Discard)
	assert.ErrorIs(t, err, io.EOF)
}

func TestGetPassword(t *testing.T) {
	t.Run("terminal", func(t *testing.T) {
		stubTerminal(t, true, []byte("s3cret"), nil)
		var out bytes.Buffer
		pw, err := GetPassword(rdr("not read\n"), &out)
		require.NoError(t, err)
		assert.Equal(t, "s3cret", string(pw))
		assert.Equal(t, "Enter password: \n", out.String())
	})

	t.Run("terminal error", func(t *testing.T) {
		stubTerminal(t, true, nil, errors.New("boom"))
		_, err := GetPassword(rdr(""), io.Discard)
		assert.EqualError(t, err, "boom")
	})

	t.Run("piped", func(t *testing.T) {
		stubTerminal(t, false, nil, errors.New("must not be called"))
		in := rdr("piped pw\nnext\n")
		pw, err := GetPassword(in, io.Discard)
		require.NoError(t, err)
		assert.Equal(t, "piped pw", string(pw))

		rest, err := in.ReadString('\n')
		require.NoError(t, err)
		assert.Equal(t, "next\n", rest)
	})

	t.Run("piped EOF", func(t *testing.T) {
		stubTerminal(t, false, nil, nil)
		_, err := GetPassword(rdr(""), io.Discard)
		assert.ErrorIs(t, err, io.EOF)
	})
}

func TestGetMultiline(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(rdr("Arrays grow\nby doubling.\n\nignored\n"), "Your answer", &out)
	require.NoError(t, err)
	assert.Equal(t, "Arrays grow\nby doubling.", got)
	assert.Contains(t, out.String(), "Your answer\n(press Enter on an empty line to finish)")
}

func TestGetLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"stops at empty line", "LIFO\nFIFO\n\nrest\n", []string{"LIFO", "FIFO"}},
		{"CRLF input", "LIFO\r\nFIFO\r\n\r\n", []string{"LIFO", "FIFO"}},
		{"immediate empty line", "\n", []string{}},
		{"EOF ends input", "LIFO\nFIFO", []string{"LIFO", "FIFO"}},
		{"inner spaces kept", " a = b \n\n", []string{" a = b "}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := GetLines(rdr(tc.input), "Options", io.Discard)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
