package main

import (
	"io"
	"os"
	"strings"

	"github.com/flarebyte/hello/cmd/hello/root"
)

type exitCoder interface {
	ExitCode() int
}

// report writes err to w as one line and returns the process status for it.
func report(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	line := strings.Join(strings.Fields(err.Error()), " ")
	if line == "" {
		line = "hello: write failed"
	}
	_, _ = io.WriteString(w, line+"\n")
	if ec, ok := err.(exitCoder); ok && ec.ExitCode() != 0 {
		return ec.ExitCode()
	}
	return 1
}

func main() {
	if code := report(os.Stderr, root.Execute()); code != 0 {
		os.Exit(code)
	}
}
