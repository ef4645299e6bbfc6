package pyfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteThenReadText(t *testing.T) {
	tests := []struct {
		name     string
		encoding string
		content  string
	}{
		{name: "no encoding", encoding: "", content: "plain bytes"},
		{name: "utf-8", encoding: "utf-8", content: "héllo wörld"},
		{name: "latin1", encoding: "ISO-8859-1", content: "héllo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "text.txt")

			require.NoError(t, WriteText(path, tt.content, tt.encoding))

			got, err := ReadText(path, tt.encoding)
			require.NoError(t, err)
			assert.Equal(t, tt.content, got)
		})
	}
}

func TestWriteTextEncodesOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin1.txt")

	require.NoError(t, WriteText(path, "é", "ISO-8859-1"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xe9}, raw)
}

func TestReadTextUnknownEncoding(t *testing.T) {
	path := writeFixture(t, "content")

	_, err := ReadText(path, "no-such-encoding")
	assert.Error(t, err)
}

func TestReadTextMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := ReadText(path, "")
	assert.Error(t, err)
}
