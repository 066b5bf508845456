// Package ui provides terminal output with pager support.
//
// The pager command comes from local configuration or the environment and
// is run as given, the way less and man honor $PAGER.
package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/term"

	"github.com/footprint-tools/shellshell/internal/domain"
)

// DefaultPager is used when neither the config nor the environment name one.
const DefaultPager = "less -FRSX"

// Writer implements domain.OutputWriter. Long output such as help goes
// through Pager, which only pages when out is a terminal.
type Writer struct {
	out           io.Writer
	pagerDisabled bool
	pagerOverride string
	configGetter  func(string) (string, bool)
	envGetter     func(string) string
	isTerminal    func() bool
	run           func(name string, args []string, content string, out io.Writer) error
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithPagerDisabled makes Pager print directly.
func WithPagerDisabled() WriterOption {
	return func(w *Writer) { w.pagerDisabled = true }
}

// WithPagerOverride sets a pager command that wins over config and environment.
func WithPagerOverride(cmd string) WriterOption {
	return func(w *Writer) { w.pagerOverride = cmd }
}

// WithConfigGetter sets where the pager config key is read from.
func WithConfigGetter(fn func(string) (string, bool)) WriterOption {
	return func(w *Writer) { w.configGetter = fn }
}

// WithEnvGetter replaces os.Getenv.
func WithEnvGetter(fn func(string) string) WriterOption {
	return func(w *Writer) { w.envGetter = fn }
}

// WithTerminal replaces the terminal check of the output.
func WithTerminal(fn func() bool) WriterOption {
	return func(w *Writer) { w.isTerminal = fn }
}

// WithPagerRunner replaces the function that runs the pager process.
func WithPagerRunner(fn func(name string, args []string, content string, out io.Writer) error) WriterOption {
	return func(w *Writer) { w.run = fn }
}

// NewWriter creates a Writer for stdout.
func NewWriter(opts ...WriterOption) *Writer {
	return NewWriterTo(os.Stdout, opts...)
}

// NewWriterTo creates a Writer for out.
func NewWriterTo(out io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{
		out:       out,
		envGetter: os.Getenv,
		run:       runPager,
	}
	w.isTerminal = w.outIsTerminal
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Writer) Write(p []byte) (int, error) {
	return w.out.Write(p)
}

func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w.out, format, args...)
}

func (w *Writer) Println(args ...any) (int, error) {
	return fmt.Fprintln(w.out, args...)
}

// Pager shows content through the pager, or prints it when paging does not
// apply. A pager that cannot be started falls back to printing; one that
// started and then exited non-zero has already shown the content.
func (w *Writer) Pager(content string) {
	fields := strings.Fields(w.PagerCommand())
	if len(fields) == 0 {
		_, _ = io.WriteString(w.out, content)
		return
	}
	err := w.run(fields[0], fields[1:], content, w.out)
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		_, _ = io.WriteString(w.out, content)
	}
}

// PagerCommand returns the pager Pager would run, or "" when output is
// printed directly. The first source that names a pager wins: the override,
// the pager config key, $SHELLSHELL_PAGER, $PAGER, then DefaultPager.
// "cat" means no pager.
func (w *Writer) PagerCommand() string {
	if w.pagerDisabled || !w.isTerminal() {
		return ""
	}

	candidates := []string{w.pagerOverride}
	if w.configGetter != nil {
		v, _ := w.configGetter("pager")
		candidates = append(candidates, v)
	}
	if w.envGetter != nil {
		candidates = append(candidates, w.envGetter("SHELLSHELL_PAGER"), w.envGetter("PAGER"))
	}
	candidates = append(candidates, DefaultPager)

	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if c == "cat" {
			return ""
		}
		return c
	}
	return ""
}

// IsTerminal reports whether the output is an interactive terminal.
func (w *Writer) IsTerminal() bool {
	return w.isTerminal()
}

func (w *Writer) outIsTerminal() bool {
	f, ok := w.out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func runPager(name string, args []string, content string, out io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = out
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

var _ domain.OutputWriter = (*Writer)(nil)
