// Command importonly links the hello packages without calling them.
package main

import (
	_ "github.com/flarebyte/hello/cmd/hello/root"
	_ "github.com/flarebyte/hello/internal/greeting"
)

func main() {}
