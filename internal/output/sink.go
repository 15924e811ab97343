package output

import (
	"bufio"
	"io"
	"os"
)

// WriteError wraps a failure to open or write the output destination. The
// CLI maps it to exit code 2.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return "output: writing " + e.Path + ": " + e.Err.Error()
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// WriteLines writes each palindrome to path as LF-terminated UTF-8 text, one
// per line. An empty path writes to stdout instead of opening a file.
func WriteLines(path string, lines []string) error {
	if path == "" {
		return writeTo("<stdout>", os.Stdout, lines)
	}

	f, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	defer f.Close()

	return writeTo(path, f, lines)
}

func writeTo(name string, w io.Writer, lines []string) error {
	buffered := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := buffered.WriteString(line); err != nil {
			return &WriteError{Path: name, Err: err}
		}
		if err := buffered.WriteByte('\n'); err != nil {
			return &WriteError{Path: name, Err: err}
		}
	}
	if err := buffered.Flush(); err != nil {
		return &WriteError{Path: name, Err: err}
	}
	return nil
}
