package dispatchers

import "github.com/footprint-tools/shellshell/internal/usage"

// Action is the function run when a resolved command executes. It reads the
// resolved switch and parameter values from the Resolution.
type Action func(res *Resolution) error

// Command is a named unit of execution with its own switches and an ordered
// list of parameters. Parameter order defines positional binding.
type Command struct {
	name        string
	aliases     []string
	description string
	category    string
	action      Action

	switches     map[string]bool
	switchHelp   map[string]string
	switchOrder  []string
	parameters   []*Parameter
	strictSwitch bool
	strictParam  bool
}

// CommandOption configures a Command.
type CommandOption func(*Command)

// WithDescription sets the text shown by the help command.
func WithDescription(description string) CommandOption {
	return func(c *Command) {
		c.description = description
	}
}

// WithAliases adds alternative names matched exactly during command selection.
func WithAliases(aliases ...string) CommandOption {
	return func(c *Command) {
		c.aliases = append(c.aliases, aliases...)
	}
}

// WithCategory groups the command under a heading in help output.
func WithCategory(category string) CommandOption {
	return func(c *Command) {
		c.category = category
	}
}

// WithLenientSwitches makes unknown switch names a silent no-op instead of
// an ErrUnknownSwitch failure.
func WithLenientSwitches() CommandOption {
	return func(c *Command) {
		c.strictSwitch = false
	}
}

// WithLenientParameters makes unknown parameter names (and surplus positional
// tokens) a silent no-op instead of an ErrUnknownParameter failure.
func WithLenientParameters() CommandOption {
	return func(c *Command) {
		c.strictParam = false
	}
}

// NewCommand creates a command. Unknown switches and parameters are rejected
// unless a lenient option is given.
func NewCommand(name string, action Action, opts ...CommandOption) *Command {
	c := &Command{
		name:         name,
		action:       action,
		switches:     make(map[string]bool),
		switchHelp:   make(map[string]string),
		strictSwitch: true,
		strictParam:  true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Command) Name() string        { return c.name }
func (c *Command) Description() string { return c.description }
func (c *Command) Category() string    { return c.category }

// Aliases returns a copy of the command's alternative names.
func (c *Command) Aliases() []string {
	return append([]string(nil), c.aliases...)
}

// StrictSwitches reports whether unknown switches are rejected.
func (c *Command) StrictSwitches() bool { return c.strictSwitch }

// StrictParameters reports whether unknown parameters are rejected.
func (c *Command) StrictParameters() bool { return c.strictParam }

// ConfigureParameter adds a parameter at the end of the positional order.
func (c *Command) ConfigureParameter(name string, mandatory bool, defaultValue string) error {
	return c.ConfigureParameterWithDescription(name, mandatory, defaultValue, "")
}

// ConfigureParameterWithDescription is ConfigureParameter with help text.
func (c *Command) ConfigureParameterWithDescription(name string, mandatory bool, defaultValue, description string) error {
	if name == "" {
		return usage.InvalidConfiguration("command '%s': parameter name must not be empty", c.name)
	}
	if findParameter(c.parameters, name) != nil {
		return usage.DuplicateDefinition("command '"+c.name+"'", "parameter", name)
	}
	p := NewParameter(name, mandatory, defaultValue)
	p.description = description
	c.parameters = append(c.parameters, p)
	return nil
}

// ConfigureSwitch registers a boolean switch with its initial value.
func (c *Command) ConfigureSwitch(name string, defaultValue bool) error {
	return c.ConfigureSwitchWithDescription(name, defaultValue, "")
}

// ConfigureSwitchWithDescription is ConfigureSwitch with help text.
func (c *Command) ConfigureSwitchWithDescription(name string, defaultValue bool, description string) error {
	if name == "" {
		return usage.InvalidConfiguration("command '%s': switch name must not be empty", c.name)
	}
	if _, ok := c.switches[name]; ok {
		return usage.DuplicateDefinition("command '"+c.name+"'", "switch", name)
	}
	c.switches[name] = defaultValue
	c.switchHelp[name] = description
	c.switchOrder = append(c.switchOrder, name)
	return nil
}

// HasSwitch reports whether the switch is registered.
func (c *Command) HasSwitch(name string) bool {
	_, ok := c.switches[name]
	return ok
}

// GetSwitch returns the switch value. An unknown name is an error for strict
// commands and reads as false otherwise.
func (c *Command) GetSwitch(name string) (bool, error) {
	v, ok := c.switches[name]
	if !ok {
		if c.strictSwitch {
			return false, usage.UnknownSwitch(c.name, name)
		}
		return false, nil
	}
	return v, nil
}

// SetSwitch sets the switch value. The name is checked before anything is
// written.
func (c *Command) SetSwitch(name string, value bool) error {
	if _, ok := c.switches[name]; !ok {
		if c.strictSwitch {
			return usage.UnknownSwitch(c.name, name)
		}
		return nil
	}
	c.switches[name] = value
	return nil
}

// Switches returns the registered switch names in registration order.
func (c *Command) Switches() []string {
	return append([]string(nil), c.switchOrder...)
}

// SwitchDescription returns the help text of a switch.
func (c *Command) SwitchDescription(name string) string {
	return c.switchHelp[name]
}

// Parameter looks up a parameter by name.
func (c *Command) Parameter(name string) (*Parameter, bool) {
	p := findParameter(c.parameters, name)
	return p, p != nil
}

// Parameters returns the parameters in positional order.
func (c *Command) Parameters() []*Parameter {
	return append([]*Parameter(nil), c.parameters...)
}

// MandatoryParameters returns the mandatory parameters in positional order.
func (c *Command) MandatoryParameters() []*Parameter {
	var out []*Parameter
	for _, p := range c.parameters {
		if p.mandatory {
			out = append(out, p)
		}
	}
	return out
}

// GetParameterAsString returns the parameter value. An unknown name is an
// error for strict commands and reads as "" otherwise.
func (c *Command) GetParameterAsString(name string) (string, error) {
	p := findParameter(c.parameters, name)
	if p == nil {
		if c.strictParam {
			return "", usage.UnknownParameter(c.name, name)
		}
		return "", nil
	}
	return p.Value(), nil
}

// GetParameterAsInt returns the parameter value parsed as an integer.
func (c *Command) GetParameterAsInt(name string) (int, error) {
	p := findParameter(c.parameters, name)
	if p == nil {
		if c.strictParam {
			return 0, usage.UnknownParameter(c.name, name)
		}
		return 0, nil
	}
	return p.Int()
}

// SetParameter sets the parameter value. The name is checked before anything
// is written.
func (c *Command) SetParameter(name, value string) error {
	p := findParameter(c.parameters, name)
	if p == nil {
		if c.strictParam {
			return usage.UnknownParameter(c.name, name)
		}
		return nil
	}
	p.Set(value)
	return nil
}

// names returns the canonical name followed by the aliases.
func (c *Command) names() []string {
	return append([]string{c.name}, c.aliases...)
}

func (c *Command) matches(token string) bool {
	for _, n := range c.names() {
		if n == token {
			return true
		}
	}
	return false
}

// clone returns a copy whose switch and parameter values can be changed
// without touching the original.
func (c *Command) clone() *Command {
	cc := *c
	cc.switches = make(map[string]bool, len(c.switches))
	for k, v := range c.switches {
		cc.switches[k] = v
	}
	cc.parameters = cloneParameters(c.parameters)
	return &cc
}
