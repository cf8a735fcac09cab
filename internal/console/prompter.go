package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter asks the player for decisions over a line-oriented reader.
// Once input is exhausted or ctx is cancelled every question gets the
// answer that ends the session soonest and Err reports why.
type Prompter struct {
	ctx     context.Context
	lines   <-chan string
	scanErr error
	out     io.Writer
	err     error
}

// NewPrompter creates a prompter reading answers from in and writing questions
// to out. A pending question is abandoned as soon as ctx is cancelled.
func NewPrompter(ctx context.Context, in io.Reader, out io.Writer) *Prompter {
	lines := make(chan string)
	p := &Prompter{
		ctx:   ctx,
		lines: lines,
		out:   out,
	}

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		// read by readLine only after lines is closed
		p.scanErr = scanner.Err()
	}()

	return p
}

// Err returns the error that exhausted the input, or nil
func (p *Prompter) Err() error {
	return p.err
}

// readLine prints the question and returns the trimmed answer.
// ok is false once the input is exhausted or the context is done.
func (p *Prompter) readLine(question string) (string, bool) {
	if p.err != nil {
		return "", false
	}
	fmt.Fprintln(p.out, PromptStyle.Render(question))

	select {
	case line, open := <-p.lines:
		if !open {
			p.err = p.scanErr
			if p.err == nil {
				p.err = p.ctx.Err()
			}
			if p.err == nil {
				p.err = io.EOF
			}
			return "", false
		}
		return strings.TrimSpace(line), true
	case <-p.ctx.Done():
		p.err = p.ctx.Err()
		return "", false
	}
}

// Stand asks hit or stand. Only "s" stands; any other answer hits.
func (p *Prompter) Stand() bool {
	answer, ok := p.readLine("Hit or Stand?")
	if !ok {
		return true
	}
	return strings.EqualFold(answer, "s")
}

// Continue asks whether to play another round. Only "y" continues.
func (p *Prompter) Continue() bool {
	answer, ok := p.readLine("Do you want to continue?")
	if !ok {
		return false
	}
	return strings.EqualFold(answer, "y")
}

// Bet asks for a wager until the answer is a whole number between 0 and credit
func (p *Prompter) Bet(credit int64) int64 {
	question := fmt.Sprintf("Please enter bet (credit: %d)", credit)
	for {
		answer, ok := p.readLine(question)
		if !ok {
			return 0
		}

		bet, err := strconv.ParseInt(answer, 10, 64)
		switch {
		case err != nil:
			question = fmt.Sprintf("Not a number. Please enter bet (credit: %d)", credit)
		case bet > credit:
			question = fmt.Sprintf("Too high. Please enter bet (credit: %d)", credit)
		case bet < 0:
			question = fmt.Sprintf("Too low. Please enter bet (credit: %d)", credit)
		default:
			return bet
		}
	}
}
