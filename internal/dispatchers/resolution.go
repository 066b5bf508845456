package dispatchers

import (
	"github.com/google/uuid"

	"github.com/footprint-tools/shellshell/internal/usage"
)

// Resolution is the outcome of resolving one token array: the selected
// command and the values bound for this invocation. It is not safe for
// concurrent use, but separate Resolutions never share values.
type Resolution struct {
	// ID identifies the invocation in logs and history.
	ID string

	dispatcher *Dispatcher
	command    *Command
	globals    []*Parameter
	tokens     []string
	positional []string
	extra      []string
}

func newResolution(d *Dispatcher, cmd *Command, globals []*Parameter, tokens []string) *Resolution {
	return &Resolution{
		ID:         uuid.NewString(),
		dispatcher: d,
		command:    cmd,
		globals:    globals,
		tokens:     append([]string(nil), tokens...),
	}
}

// Dispatcher returns the dispatcher that produced the resolution.
func (r *Resolution) Dispatcher() *Dispatcher { return r.dispatcher }

// Command returns this invocation's copy of the selected command.
func (r *Resolution) Command() *Command { return r.command }

// Tokens returns the tokens that were resolved, command name included.
func (r *Resolution) Tokens() []string { return append([]string(nil), r.tokens...) }

// Positional returns the values bound by position, in order.
func (r *Resolution) Positional() []string { return append([]string(nil), r.positional...) }

// Extra returns positional tokens beyond the command's parameter list that a
// lenient command ignored.
func (r *Resolution) Extra() []string { return append([]string(nil), r.extra...) }

// GlobalParameter returns this invocation's copy of a global parameter.
func (r *Resolution) GlobalParameter(name string) (*Parameter, bool) {
	p := findParameter(r.globals, name)
	return p, p != nil
}

// GetParameterAsString reads a global parameter, or the command's parameter
// of that name when no global matches.
func (r *Resolution) GetParameterAsString(name string) (string, error) {
	if g := findParameter(r.globals, name); g != nil {
		return g.Value(), nil
	}
	return r.command.GetParameterAsString(name)
}

// GetParameterAsInt is GetParameterAsString parsed as an integer.
func (r *Resolution) GetParameterAsInt(name string) (int, error) {
	if g := findParameter(r.globals, name); g != nil {
		return g.Int()
	}
	return r.command.GetParameterAsInt(name)
}

// SetParameter writes to the same slot GetParameterAsString reads.
func (r *Resolution) SetParameter(name, value string) error {
	if g := findParameter(r.globals, name); g != nil {
		g.Set(value)
		return nil
	}
	return r.command.SetParameter(name, value)
}

// GetSwitch reads a switch of the selected command.
func (r *Resolution) GetSwitch(name string) (bool, error) {
	return r.command.GetSwitch(name)
}

// SetSwitch writes a switch of the selected command.
func (r *Resolution) SetSwitch(name string, value bool) error {
	return r.command.SetSwitch(name, value)
}

// String returns a parameter value, or fallback when it cannot be read.
// Useful inside actions for optional parameters.
func (r *Resolution) String(name, fallback string) string {
	v, err := r.GetParameterAsString(name)
	if err != nil || v == "" {
		return fallback
	}
	return v
}

// Has reports whether a switch is on. Unknown switches read as off.
func (r *Resolution) Has(name string) bool {
	v, err := r.GetSwitch(name)
	return err == nil && v
}

// Execute invokes the selected command's action.
func (r *Resolution) Execute() error {
	if r == nil || r.command == nil {
		return usage.NoCommandSelected("")
	}
	return r.command.action(r)
}
