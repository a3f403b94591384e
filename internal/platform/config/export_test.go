package config

import "io"

// SetExitHooksForTest swaps the Exitf writer and exit function and returns
// a func that restores both.
func SetExitHooksForTest(w io.Writer, exit func(int)) func() {
	prevWriter, prevExit := exitStderr, exitFunc
	exitStderr, exitFunc = w, exit
	return func() { exitStderr, exitFunc = prevWriter, prevExit }
}
