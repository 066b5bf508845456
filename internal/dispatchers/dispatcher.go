package dispatchers

import (
	"strings"
	"sync"

	"github.com/footprint-tools/shellshell/internal/domain"
	"github.com/footprint-tools/shellshell/internal/log"
	"github.com/footprint-tools/shellshell/internal/ui"
	"github.com/footprint-tools/shellshell/internal/ui/style"
	"github.com/footprint-tools/shellshell/internal/usage"
)

const (
	// HelpCommandName is the name of the built-in help command.
	HelpCommandName = "help"
	// HelpCommandParameter names the command help should describe.
	HelpCommandParameter = "cmd"

	DefaultSwitchMarker = "/"
	DefaultParamMarker  = "-"
)

// Dispatcher owns the registered commands and global parameters and turns a
// token array into a Resolution.
//
// Configuration methods may be called until setup is done. After that the
// dispatcher is only read, and Resolve may be called from several goroutines:
// every Resolution works on its own copies of the values.
type Dispatcher struct {
	mu sync.RWMutex

	commands                  []*Command
	globals                   []*Parameter
	globalMandatoryExceptions map[string]bool

	switchMarker   string
	paramMarker    string
	useDefault     bool
	defaultCommand string
	programName    string

	logger domain.Logger
	output domain.OutputWriter
	styler domain.Styler
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithSwitchMarker sets the prefix that marks switch tokens.
func WithSwitchMarker(marker string) Option {
	return func(d *Dispatcher) {
		d.switchMarker = marker
	}
}

// WithParamMarker sets the prefix that marks named parameter tokens.
func WithParamMarker(marker string) Option {
	return func(d *Dispatcher) {
		d.paramMarker = marker
	}
}

// WithUseDefaultCommand enables falling back to the default command when no
// token names one.
func WithUseDefaultCommand(enabled bool) Option {
	return func(d *Dispatcher) {
		d.useDefault = enabled
	}
}

// WithDefaultCommand names the fallback command. Without it the first
// registered command is used.
func WithDefaultCommand(name string) Option {
	return func(d *Dispatcher) {
		d.defaultCommand = name
	}
}

// WithLogger sets the logger used for resolution tracing.
func WithLogger(l domain.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithOutput sets where the built-in help command writes.
func WithOutput(w domain.OutputWriter) Option {
	return func(d *Dispatcher) {
		if w != nil {
			d.output = w
		}
	}
}

// WithStyler sets the styler used by the built-in help command.
func WithStyler(s domain.Styler) Option {
	return func(d *Dispatcher) {
		if s != nil {
			d.styler = s
		}
	}
}

// WithProgramName sets the name shown in help output.
func WithProgramName(name string) Option {
	return func(d *Dispatcher) {
		d.programName = name
	}
}

// New creates a Dispatcher with the built-in help command registered first.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		globalMandatoryExceptions: map[string]bool{HelpCommandName: true},
		switchMarker:              DefaultSwitchMarker,
		paramMarker:               DefaultParamMarker,
		programName:               "shellshell",
		logger:                    log.NopLogger{},
		output:                    ui.NewWriter(ui.WithPagerDisabled()),
		styler:                    style.NopStyler{},
	}
	for _, opt := range opts {
		opt(d)
	}

	help := NewCommand(HelpCommandName, d.helpAction,
		WithDescription("List the available commands or describe one of them"),
		WithCategory(CategoryBuiltin),
	)
	_ = help.ConfigureParameterWithDescription(HelpCommandParameter, false, "", "Command to describe")
	d.commands = append(d.commands, help)

	return d
}

// ConfigureCommand registers a command. Its name and aliases must not clash
// with any registered command name or alias.
func (d *Dispatcher) ConfigureCommand(cmd *Command) error {
	if cmd == nil || cmd.name == "" {
		return usage.InvalidConfiguration("command name must not be empty")
	}
	if cmd.action == nil {
		return usage.InvalidConfiguration("command '%s' has no action", cmd.name)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for _, existing := range d.commands {
		for _, n := range cmd.names() {
			if existing.matches(n) {
				return usage.CommandAlreadyConfigured(n)
			}
		}
	}

	d.commands = append(d.commands, cmd)
	d.logger.Debug("dispatch: configured command %s (%d parameters, %d switches)", cmd.name, len(cmd.parameters), len(cmd.switches))
	return nil
}

// ConfigureGlobalParameter registers a parameter settable from any command's
// tokens. Globals take priority over same-named command parameters.
func (d *Dispatcher) ConfigureGlobalParameter(name string, mandatory bool, defaultValue string) error {
	return d.ConfigureGlobalParameterWithDescription(name, mandatory, defaultValue, "")
}

// ConfigureGlobalParameterWithDescription is ConfigureGlobalParameter with help text.
func (d *Dispatcher) ConfigureGlobalParameterWithDescription(name string, mandatory bool, defaultValue, description string) error {
	if name == "" {
		return usage.InvalidConfiguration("global parameter name must not be empty")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if findParameter(d.globals, name) != nil {
		return usage.DuplicateDefinition("global scope", "parameter", name)
	}
	p := NewParameter(name, mandatory, defaultValue)
	p.description = description
	d.globals = append(d.globals, p)
	return nil
}

// DisableHelpCommand removes the built-in help command. It is a no-op when
// the command is already gone.
func (d *Dispatcher) DisableHelpCommand() {
	d.mu.Lock()
	defer d.mu.Unlock()

	kept := d.commands[:0]
	for _, c := range d.commands {
		if c.name != HelpCommandName {
			kept = append(kept, c)
		}
	}
	d.commands = kept
}

// AddGlobalMandatoryException exempts a command from mandatory global
// parameter checks. The help command is always exempt.
func (d *Dispatcher) AddGlobalMandatoryException(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.globalMandatoryExceptions[name] = true
}

// SetSwitchMarker changes the switch prefix. It applies to every later
// resolution, whenever the commands were registered.
func (d *Dispatcher) SetSwitchMarker(marker string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := validateMarkers(marker, d.paramMarker); err != nil {
		return err
	}
	d.switchMarker = marker
	return nil
}

// SetParamMarker changes the named parameter prefix.
func (d *Dispatcher) SetParamMarker(marker string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := validateMarkers(d.switchMarker, marker); err != nil {
		return err
	}
	d.paramMarker = marker
	return nil
}

// SetMarkers changes both prefixes at once, so a swap of the two markers is
// validated as a pair.
func (d *Dispatcher) SetMarkers(switchMarker, paramMarker string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := validateMarkers(switchMarker, paramMarker); err != nil {
		return err
	}
	d.switchMarker = switchMarker
	d.paramMarker = paramMarker
	return nil
}

// SetUseDefaultCommand toggles the default command fallback.
func (d *Dispatcher) SetUseDefaultCommand(enabled bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.useDefault = enabled
}

// SetDefaultCommand names the fallback command. An empty name restores the
// first-registered rule. The name is looked up at resolution time.
func (d *Dispatcher) SetDefaultCommand(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.defaultCommand = name
}

func (d *Dispatcher) SwitchMarker() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.switchMarker
}

func (d *Dispatcher) ParamMarker() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.paramMarker
}

func (d *Dispatcher) UseDefaultCommand() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.useDefault
}

func (d *Dispatcher) ProgramName() string { return d.programName }

func (d *Dispatcher) Logger() domain.Logger       { return d.logger }
func (d *Dispatcher) Output() domain.OutputWriter { return d.output }
func (d *Dispatcher) Styler() domain.Styler       { return d.styler }

// Commands returns the registered commands in registration order.
func (d *Dispatcher) Commands() []*Command {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]*Command(nil), d.commands...)
}

// Command looks up a registered command by name or alias.
func (d *Dispatcher) Command(name string) (*Command, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	c := d.lookup(name)
	return c, c != nil
}

// GlobalParameters returns the registered global parameters in order.
func (d *Dispatcher) GlobalParameters() []*Parameter {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]*Parameter(nil), d.globals...)
}

// DefaultCommand returns the command used by the fallback, if any.
func (d *Dispatcher) DefaultCommand() (*Command, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	c := d.defaultLocked()
	return c, c != nil
}

// CommandNames returns every name and alias, for suggestions and completion.
func (d *Dispatcher) CommandNames() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var names []string
	for _, c := range d.commands {
		names = append(names, c.names()...)
	}
	return names
}

func (d *Dispatcher) lookup(name string) *Command {
	for _, c := range d.commands {
		if c.matches(name) {
			return c
		}
	}
	return nil
}

func (d *Dispatcher) defaultLocked() *Command {
	if d.defaultCommand != "" {
		return d.lookup(d.defaultCommand)
	}
	if len(d.commands) == 0 {
		return nil
	}
	return d.commands[0]
}

func validateMarkers(switchMarker, paramMarker string) error {
	if switchMarker == "" || paramMarker == "" {
		return usage.InvalidConfiguration("switch and parameter markers must not be empty")
	}
	if strings.HasPrefix(paramMarker, switchMarker) {
		return usage.InvalidConfiguration("parameter marker %q must not start with switch marker %q", paramMarker, switchMarker)
	}
	return nil
}
