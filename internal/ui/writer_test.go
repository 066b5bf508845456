package ui

import (
	"bytes"
	"errors"
	"io"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriter_PrintfAndPrintln(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterTo(&buf)

	_, err := w.Printf("%s=%d\n", "limit", 20)
	require.NoError(t, err)
	_, err = w.Println("done")
	require.NoError(t, err)
	_, err = w.Write([]byte("raw"))
	require.NoError(t, err)

	require.Equal(t, "limit=20\ndone\nraw", buf.String())
}

func TestWriter_BuffersAreNotTerminals(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterTo(&buf, WithPagerOverride("less"))

	require.False(t, w.IsTerminal())
	require.Empty(t, w.PagerCommand())

	w.Pager("page content\n")
	require.Equal(t, "page content\n", buf.String())
}

func TestWriter_PagerCommand(t *testing.T) {
	tests := []struct {
		name     string
		override string
		config   string
		env      map[string]string
		disabled bool
		want     string
	}{
		{name: "default", want: DefaultPager},
		{name: "PAGER", env: map[string]string{"PAGER": "more"}, want: "more"},
		{name: "app env wins over PAGER", env: map[string]string{"PAGER": "more", "SHELLSHELL_PAGER": "most"}, want: "most"},
		{name: "config wins over env", config: "less -R", env: map[string]string{"PAGER": "more"}, want: "less -R"},
		{name: "override wins", override: "bat", config: "less -R", want: "bat"},
		{name: "cat bypasses", config: " cat ", env: map[string]string{"PAGER": "more"}, want: ""},
		{name: "disabled", disabled: true, override: "bat", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := []WriterOption{
				WithTerminal(func() bool { return true }),
				WithPagerOverride(tt.override),
				WithConfigGetter(func(key string) (string, bool) {
					require.Equal(t, "pager", key)
					return tt.config, tt.config != ""
				}),
				WithEnvGetter(func(key string) string { return tt.env[key] }),
			}
			if tt.disabled {
				opts = append(opts, WithPagerDisabled())
			}

			require.Equal(t, tt.want, NewWriterTo(&bytes.Buffer{}, opts...).PagerCommand())
		})
	}
}

func TestWriter_PagerRunsCommand(t *testing.T) {
	var buf bytes.Buffer
	var gotName string
	var gotArgs []string
	w := NewWriterTo(&buf,
		WithTerminal(func() bool { return true }),
		WithPagerOverride("less -FRSX"),
		WithPagerRunner(func(name string, args []string, content string, out io.Writer) error {
			gotName, gotArgs = name, args
			_, err := io.WriteString(out, "[paged] "+content)
			return err
		}),
	)

	w.Pager("help")

	require.Equal(t, "less", gotName)
	require.Equal(t, []string{"-FRSX"}, gotArgs)
	require.Equal(t, "[paged] help", buf.String())
}

func TestWriter_PagerFailureFallsBack(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterTo(&buf,
		WithTerminal(func() bool { return true }),
		WithPagerRunner(func(string, []string, string, io.Writer) error {
			return errors.New("not found")
		}),
	)

	w.Pager("help")

	require.Equal(t, "help", buf.String())
}

func TestWriter_PagerExitErrorDoesNotReprint(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterTo(&buf,
		WithTerminal(func() bool { return true }),
		WithPagerRunner(func(_ string, _ []string, content string, out io.Writer) error {
			_, _ = io.WriteString(out, content[:2])
			return &exec.ExitError{}
		}),
	)

	w.Pager("help")

	require.Equal(t, "he", buf.String())
}
