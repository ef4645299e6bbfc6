package pyfile

import (
	"log"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	filemodels "github.com/ImGajeed76/pyfile/pkg/pyfile/models"
)

// ReadText reads the whole content of path and decodes it with the
// IANA-registered encoding encodingName. An empty name returns the bytes
// as-is. The File adapter itself never converts encodings; this helper
// decodes after the read.
func ReadText(path string, encodingName string) (string, error) {
	enc, err := lookupEncoding(encodingName)
	if err != nil {
		return "", &filemodels.IOError{Op: "read-text", Path: path, Err: err}
	}

	f, err := Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("error closing file: %v", err)
		}
	}()

	content, err := f.Read()
	if err != nil {
		return "", err
	}

	decoded, err := enc.NewDecoder().Bytes([]byte(content))
	if err != nil {
		return "", &filemodels.IOError{Op: "read-text", Path: path, Err: err}
	}
	return string(decoded), nil
}

// WriteText encodes content with the IANA-registered encoding encodingName
// and writes it to path, creating or truncating the file. An empty name
// writes the bytes as-is.
func WriteText(path string, content string, encodingName string) error {
	enc, err := lookupEncoding(encodingName)
	if err != nil {
		return &filemodels.IOError{Op: "write-text", Path: path, Err: err}
	}

	encoded, err := enc.NewEncoder().Bytes([]byte(content))
	if err != nil {
		return &filemodels.IOError{Op: "write-text", Path: path, Err: err}
	}

	f, err := Open(path, OpenOptions{Mode: "w"})
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("error closing file: %v", err)
		}
	}()

	if err := f.Write(string(encoded)); err != nil {
		return err
	}
	return f.Flush()
}

// lookupEncoding resolves an IANA encoding name, treating an empty or
// unmapped name as a pass-through.
func lookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		return encoding.Nop, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		enc = encoding.Nop
	}
	return enc, nil
}
