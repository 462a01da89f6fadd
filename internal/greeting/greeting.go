// Package greeting holds the fixed message the hello binary prints.
package greeting

import "io"

// Text is the message, without its line terminator.
const Text = "Hello World"

// Write writes Text and a single newline to w in one call.
func Write(w io.Writer) error {
	line := Text + "\n"
	n, err := io.WriteString(w, line)
	if err != nil {
		return err
	}
	if n != len(line) {
		return io.ErrShortWrite
	}
	return nil
}
