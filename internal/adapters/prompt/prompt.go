// Package prompt asks the user to pick between candidates on the terminal.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/FloatyJellyfish/mod-updater/internal/core/domain"
	"github.com/FloatyJellyfish/mod-updater/internal/core/ports"
	"github.com/FloatyJellyfish/mod-updater/internal/ui/output"
	"github.com/FloatyJellyfish/mod-updater/internal/ui/style"
	"github.com/muesli/termenv"
	"go.trai.ch/zerr"
)

// Chooser implements ports.Chooser by printing a numbered menu and reading one line.
// A single goroutine owns the terminal and serves requests in arrival order,
// so menus never interleave and callers wait without holding a lock.
type Chooser struct {
	in       *bufio.Reader
	out      *termenv.Output
	requests chan request
}

type request struct {
	choice ports.Choice
	reply  chan<- reply
}

type reply struct {
	index int
	err   error
}

// New creates a Chooser and starts its terminal goroutine. Nil arguments default to stdin and stderr.
func New(in io.Reader, out io.Writer) *Chooser {
	if in == nil {
		in = os.Stdin
	}
	c := &Chooser{
		in:       bufio.NewReader(in),
		out:      output.New(out),
		requests: make(chan request),
	}
	go c.serve()
	return c
}

// Choose prints the options of choice and returns the selected index.
// A cancelled context abandons the request; an answer already being read is discarded.
func (c *Chooser) Choose(ctx context.Context, choice ports.Choice) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	replies := make(chan reply, 1)
	select {
	case c.requests <- request{choice: choice, reply: replies}:
	case <-ctx.Done():
		return 0, ctx.Err()
	}

	select {
	case r := <-replies:
		return r.index, r.err
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

func (c *Chooser) serve() {
	for req := range c.requests {
		index, err := c.ask(req.choice)
		req.reply <- reply{index: index, err: err}
	}
}

func (c *Chooser) ask(choice ports.Choice) (int, error) {
	header := fmt.Sprintf("Available %ss for %s:", choice.Subject, choice.Item)
	_, _ = fmt.Fprintln(c.out, c.out.String(header).Bold().String())
	for i, label := range choice.Options {
		index := c.out.String(strconv.Itoa(i)).Foreground(termenv.RGBColor(string(style.Iris))).String()
		_, _ = fmt.Fprintf(c.out, "\t%s - %s\n", index, label)
	}
	_, _ = fmt.Fprintf(c.out, "Select %s (0-%d): ", choice.Subject, len(choice.Options)-1)

	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return 0, c.invalid(choice, "no input", err.Error())
	}

	answer := strings.TrimSpace(line)
	index, err := strconv.Atoi(answer)
	if err != nil {
		return 0, c.invalid(choice, "not a number", answer)
	}
	if index < 0 || index >= len(choice.Options) {
		return 0, c.invalid(choice, "out of range", answer)
	}
	return index, nil
}

func (c *Chooser) invalid(choice ports.Choice, reason, input string) error {
	err := zerr.With(zerr.Wrap(domain.ErrInvalidSelection, reason), "item", choice.Item)
	return zerr.With(err, "input", input)
}
