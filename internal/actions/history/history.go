// Package history implements the history command, which lists or clears the
// recorded invocations.
package history

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/footprint-tools/shellshell/internal/dispatchers"
	"github.com/footprint-tools/shellshell/internal/domain"
	"github.com/footprint-tools/shellshell/internal/format"
)

// Command returns the action of the history command. A nil store means
// recording is disabled.
func Command(hs domain.HistoryStore) dispatchers.Action {
	return func(res *dispatchers.Resolution) error {
		d := res.Dispatcher()
		if hs == nil {
			_, _ = d.Output().Println(d.Styler().Muted("History is disabled (enable_history=false)"))
			return nil
		}

		limit, err := res.GetParameterAsInt("limit")
		if err != nil {
			return err
		}

		deps := DefaultDeps(hs, d.Output(), d.Styler())
		if res.Has("clear") {
			return clearHistory(deps)
		}
		return list(limit, res.Has("json"), deps)
	}
}

func list(limit int, jsonOutput bool, deps Deps) error {
	invocations, err := deps.Recent(limit)
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}

	if jsonOutput {
		return listJSON(invocations, deps)
	}

	if len(invocations) == 0 {
		_, _ = deps.Println(deps.Styler.Muted("No commands recorded yet"))
		return nil
	}

	s := deps.Styler
	for _, inv := range invocations {
		status := s.Success(string(inv.Status))
		if inv.Status == domain.InvocationFailed {
			status = s.Error(string(inv.Status))
		}

		line := strings.TrimSpace(inv.Command + " " + strings.Join(inv.Args, " "))
		_, _ = deps.Printf("%s  %-6s  %s %s\n",
			s.Muted(deps.FormatTime(inv.CreatedAt.Local())),
			status,
			line,
			s.Muted("("+format.Duration(inv.Duration)+")"),
		)
		if inv.Error != "" {
			_, _ = deps.Printf("    %s\n", s.Error(firstLine(inv.Error)))
		}
	}
	return nil
}

type jsonInvocation struct {
	ID         string   `json:"id"`
	Command    string   `json:"command"`
	Args       []string `json:"args"`
	Status     string   `json:"status"`
	Error      string   `json:"error,omitempty"`
	DurationMS int64    `json:"duration_ms"`
	CreatedAt  string   `json:"created_at"`
}

func listJSON(invocations []domain.Invocation, deps Deps) error {
	out := make([]jsonInvocation, 0, len(invocations))
	for _, inv := range invocations {
		args := inv.Args
		if args == nil {
			args = []string{}
		}
		out = append(out, jsonInvocation{
			ID:         inv.ID,
			Command:    inv.Command,
			Args:       args,
			Status:     string(inv.Status),
			Error:      inv.Error,
			DurationMS: inv.Duration.Milliseconds(),
			CreatedAt:  inv.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	_, _ = deps.Println(string(data))
	return nil
}

func clearHistory(deps Deps) error {
	n, err := deps.Clear()
	if err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	_, _ = deps.Printf("%s %d entries\n", deps.Styler.Success("Cleared"), n)
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
