package utils

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/logrusorgru/aurora"
	"golang.org/x/term"
)

// Spinner initializes the process indicator.
type Spinner struct {
	out      io.Writer
	stopChan chan struct{}
	doneChan chan struct{}
}

// NewSpinner instantiates a new Spinner writing to stderr.
func NewSpinner() *Spinner {
	return &Spinner{out: os.Stderr}
}

// Start starts the process indicator. Nothing is animated
// when stderr is not attached to a terminal.
func (s *Spinner) Start(message string) {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return
	}
	s.stopChan = make(chan struct{})
	s.doneChan = make(chan struct{})

	go func() {
		defer close(s.doneChan)
		for {
			for _, r := range `-\|/` {
				select {
				case <-s.stopChan:
					fmt.Fprint(s.out, "\r")
					return
				default:
					fmt.Fprintf(s.out, "\r%s %s", message, aurora.Green(string(r)))
					time.Sleep(time.Millisecond * 100)
				}
			}
		}
	}()
}

// Stop stops the process indicator and waits for the last frame to be written.
func (s *Spinner) Stop() {
	if s.stopChan == nil {
		return
	}
	close(s.stopChan)
	<-s.doneChan
	s.stopChan = nil
}
