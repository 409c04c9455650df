package console

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/combatsim/internal/config"
	"github.com/cory-johannsen/combatsim/internal/game/combat"
)

var (
	_ combat.Presenter    = (*Console)(nil)
	_ combat.ActionReader = (*Console)(nil)
)

// lineResult is one line (or the terminal read error) from the input pump.
type lineResult struct {
	line string
	err  error
}

// Console is a line-oriented terminal over an io.Reader and io.Writer.
// It implements combat.Presenter and combat.ActionReader.
// It is not safe for concurrent use.
type Console struct {
	reader   *bufio.Reader
	w        io.Writer
	clear    bool
	renderer *Renderer
	logger   *zap.Logger

	pumpOnce sync.Once
	lines    chan lineResult
}

// New wraps r and w.
//
// Precondition: r, w and logger must be non-nil.
func New(r io.Reader, w io.Writer, cfg config.ConsoleConfig, logger *zap.Logger) *Console {
	return &Console{
		reader:   bufio.NewReaderSize(r, 4096),
		w:        w,
		clear:    cfg.ClearScreen,
		renderer: NewRenderer(cfg.Color),
		logger:   logger,
	}
}

// readLine reads a single line of input without its CR/LF terminator.
// Every other byte, control characters included, is kept.
//
// Postcondition: Returns the next line, or io.EOF once input is exhausted.
func (c *Console) readLine() (string, error) {
	var line bytes.Buffer
	for {
		b, err := c.reader.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && line.Len() > 0 {
				return line.String(), nil
			}
			return line.String(), err
		}
		if b == '\n' {
			break
		}
		if b == '\r' {
			next, err := c.reader.Peek(1)
			if err == nil && len(next) > 0 && next[0] == '\n' {
				_, _ = c.reader.ReadByte()
			}
			break
		}
		line.WriteByte(b)
	}
	return line.String(), nil
}

// WriteLine writes text followed by a newline.
func (c *Console) WriteLine(text string) error {
	_, err := io.WriteString(c.w, text+"\n")
	return err
}

// startPump moves blocking reads onto a goroutine so callers can wait on
// ctx as well. The pump reads one line ahead at most and stops after the
// first read error, which it delivers before closing the channel.
func (c *Console) startPump() {
	c.pumpOnce.Do(func() {
		c.lines = make(chan lineResult)
		go func() {
			defer close(c.lines)
			for {
				line, err := c.readLine()
				c.lines <- lineResult{line: line, err: err}
				if err != nil {
					return
				}
			}
		}()
	})
}

// nextLine waits for the next input line or for ctx to be done.
func (c *Console) nextLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	c.startPump()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		return res.line, res.err
	}
}

// ReadAction reads lines until one names a human action, writing the
// reprompt after each invalid line. It returns as soon as ctx is done,
// even while a read is pending.
//
// Postcondition: Returns a human action, or the read/write/ctx error.
func (c *Console) ReadAction(ctx context.Context) (combat.ActionType, error) {
	for {
		line, err := c.nextLine(ctx)
		if err != nil {
			return combat.ActionUnknown, err
		}
		action, err := combat.ParseAction(line)
		if err == nil {
			return action, nil
		}
		c.logger.Debug("invalid action input", zap.String("input", line))
		if err := c.WriteLine(c.renderer.Reprompt()); err != nil {
			return combat.ActionUnknown, err
		}
	}
}

// ShowStatus renders the status screen, clearing the terminal first when configured.
func (c *Console) ShowStatus(human, computer *combat.Actor, last []combat.Result) error {
	out := c.renderer.Status(human, computer, last)
	if c.clear {
		out = ClearScreen + out
	}
	if _, err := io.WriteString(c.w, out); err != nil {
		return fmt.Errorf("writing status: %w", err)
	}
	return nil
}

// ShowOutcome renders the end-of-game message.
func (c *Console) ShowOutcome(state combat.State, _, _ *combat.Actor) error {
	return c.WriteLine(c.renderer.Outcome(state))
}

// Pause blocks for d or until ctx is done.
func Pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
