package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("closed") }

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestReadInt(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"42\n", 42},
		{"-7\r\n", -7},
		{"15", 15},
		{"12\nsecond line\n", 12},
		{"", NoValue},
		{"\n", NoValue},
		{"abc\n", NoValue},
		{" 3\n", NoValue},
		{"3.5\n", NoValue},
		{"99999999999999999999\n", NoValue},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ReadInt(strings.NewReader(tt.input)), "input %q", tt.input)
	}
}

func TestReadInt_ReadError(t *testing.T) {
	assert.Equal(t, NoValue, ReadInt(failingReader{}))
}

func TestAsk(t *testing.T) {
	var out bytes.Buffer
	got := Ask(&out, strings.NewReader("5\n"), "Enter an integer (or not):")
	assert.Equal(t, 5, got)
	assert.Equal(t, "Enter an integer (or not):\n", out.String())
}

func TestAsk_WriteError(t *testing.T) {
	in := strings.NewReader("5\n")
	assert.Equal(t, NoValue, Ask(failingWriter{}, in, "Enter an integer (or not):"))
	assert.Equal(t, 2, in.Len(), "answer must stay unread")
}
