package terminal

import (
	"fmt"
	"time"
)

const spinner = `|/-\`

// Operation represents a long running operation
type Operation struct {
	channel chan bool
}

// NewOperation starts a long running operation. The spinner only shows on terminals.
func NewOperation(format string, a ...interface{}) *Operation {
	if !interactive {
		return &Operation{}
	}

	c := make(chan bool)
	spinFrames := []rune(spinner)
	spinFramesSize := len(spinFrames)

	go func() {
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		pos := 0

	L:
		for {
			select {
			case <-c:
				break L
			case <-ticker.C:
				fmt.Fprintf(out, "\r  %s %s ", paint(yellow, fmt.Sprintf(format, a...)), string(spinFrames[pos%spinFramesSize]))
				pos++
			}
		}
		close(c)
	}()

	return &Operation{
		channel: c,
	}
}

// Success informs that the operation is over
func (o *Operation) Success(format string, a ...interface{}) {
	o.finished("✓", green, format, a...)
}

// Error informs that the operation failed
func (o *Operation) Error(err error, format string, a ...interface{}) {
	var message = format
	if err != nil {
		message = fmt.Sprintf("%s [%s]", format, err)
	}
	o.finished("✗", red, message, a...)
}

func (o *Operation) finished(symbol string, color string, format string, a ...interface{}) {
	if o.channel != nil {
		o.channel <- true
		// wait for the spinner to stop writing
		<-o.channel
		fmt.Fprint(out, "\033[2K\r")
	}

	fmt.Fprintf(out, "%s %s\n", symbol, paint(color, fmt.Sprintf(format, a...)))
}
