// Package clipboard writes result links to the user's clipboard.
package clipboard

import (
	"io"
	"os"
	"strings"

	"github.com/Laisky/errors/v2"
	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// ErrUnavailable is returned when no clipboard backend accepted the text
var ErrUnavailable = errors.New("clipboard unavailable")

// Mode selects the clipboard backend
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeSystem Mode = "system"
	ModeOSC52  Mode = "osc52"
	ModeNone   Mode = "none"
)

// ParseMode parses a config value, returning ok=false for unknown modes
func ParseMode(s string) (Mode, bool) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeAuto, ModeSystem, ModeOSC52, ModeNone:
		return m, true
	default:
		return ModeAuto, false
	}
}

// Writer puts text on a clipboard
type Writer interface {
	WriteText(text string) error
}

// WriterFunc adapts a function to Writer
type WriterFunc func(text string) error

// WriteText calls f(text)
func (f WriterFunc) WriteText(text string) error {
	return f(text)
}

// System writes through the OS clipboard tools (pbcopy, xclip, wl-copy, ...)
type System struct{}

// WriteText writes text to the system clipboard
func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return errors.Wrapf(ErrUnavailable, "system clipboard: %v", err)
	}
	return nil
}

// OSC52 asks the terminal emulator to set the clipboard with an OSC 52 escape sequence.
// It works over SSH but gives no delivery confirmation.
type OSC52 struct {
	Out io.Writer
}

// WriteText emits the escape sequence, wrapped for tmux or screen when detected
func (o OSC52) WriteText(text string) error {
	out := o.Out
	if out == nil {
		out = os.Stderr
	}

	seq := osc52.New(text)
	if os.Getenv("TMUX") != "" {
		seq = seq.Tmux()
	} else if strings.HasPrefix(os.Getenv("TERM"), "screen") {
		seq = seq.Screen()
	}

	if _, err := seq.WriteTo(out); err != nil {
		return errors.Wrapf(ErrUnavailable, "osc52: %v", err)
	}
	return nil
}

// Fallback tries each writer in order and returns the first success
type Fallback []Writer

// WriteText writes with the first writer that succeeds
func (f Fallback) WriteText(text string) error {
	var errs []string
	for _, w := range f {
		err := w.WriteText(text)
		if err == nil {
			return nil
		}
		errs = append(errs, err.Error())
	}
	if len(errs) == 0 {
		return ErrUnavailable
	}
	return errors.Wrap(ErrUnavailable, strings.Join(errs, "; "))
}

type none struct{}

func (none) WriteText(string) error { return ErrUnavailable }

// New returns the writer for mode
func New(mode Mode) Writer {
	switch mode {
	case ModeSystem:
		return System{}
	case ModeOSC52:
		return OSC52{}
	case ModeNone:
		return none{}
	default:
		return Fallback{System{}, OSC52{}}
	}
}
