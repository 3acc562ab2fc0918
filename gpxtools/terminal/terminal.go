package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/ssh/terminal"
)

const (
	reset  = "\033[0m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
)

var out io.Writer = os.Stdout

var (
	interactive = terminal.IsTerminal(int(os.Stdout.Fd()))
	colored     = interactive
)

// Setup sets where messages are printed. Colors and spinners are only used
// when w is a terminal and color is set.
func Setup(w io.Writer, color bool) {
	out = w
	interactive = isTerminal(w)
	colored = color && interactive
}

// Error print error
func Error(err error, format string, a ...interface{}) {
	var message = format
	if err != nil {
		message = fmt.Sprintf("%s [%s]", format, err)
	}
	fmt.Fprintln(out, paint(red, fmt.Sprintf(message, a...)))
}

// Info prints a plain message
func Info(format string, a ...interface{}) {
	fmt.Fprintf(out, format+"\n", a...)
}

func paint(color string, s string) string {
	if !colored {
		return s
	}
	return color + s + reset
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && terminal.IsTerminal(int(f.Fd()))
}
