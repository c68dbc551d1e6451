// Package quizexport serializes assembled quiz documents to JSON and
// validates them against an embedded JSON Schema before they leave the
// process.
package quizexport

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/carlyclark26/PharmC-Quiz/internal/quizgen"
)

// Marshal renders doc as two-space-indented JSON with a trailing
// newline. Unicode (the → in fill-in-the-blank prompts) is written
// literally, not escaped.
func Marshal(doc quizgen.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes doc to w. See Marshal for the format.
func Write(w io.Writer, doc quizgen.Document) error {
	enc := newEncoder(w)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return nil
}

// WriteFile validates doc and writes it to path, replacing any
// existing file.
func WriteFile(path string, doc quizgen.Document) error {
	if err := Validate(doc); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	if err := Write(f, doc); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}
