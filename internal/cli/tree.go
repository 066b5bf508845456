package cli

import (
	"strconv"

	"github.com/footprint-tools/shellshell/internal/actions"
	"github.com/footprint-tools/shellshell/internal/actions/addpath"
	"github.com/footprint-tools/shellshell/internal/actions/browse"
	"github.com/footprint-tools/shellshell/internal/actions/completions"
	"github.com/footprint-tools/shellshell/internal/actions/config"
	"github.com/footprint-tools/shellshell/internal/actions/demo"
	"github.com/footprint-tools/shellshell/internal/actions/history"
	"github.com/footprint-tools/shellshell/internal/actions/logs"
	"github.com/footprint-tools/shellshell/internal/actions/theme"
	"github.com/footprint-tools/shellshell/internal/dispatchers"
	"github.com/footprint-tools/shellshell/internal/domain"
	"github.com/footprint-tools/shellshell/internal/usage"
)

// ProgramName is the name shown in help and completion scripts.
const ProgramName = "shellshell"

// Command categories, in the order they first appear in help.
const (
	CategoryConfig = "configuration"
	CategoryShell  = "shell integration"
	CategoryInfo   = "information"
	CategoryDemo   = "demo commands"
)

type commandEntry struct {
	Name        string
	Description string
	Category    string
	Aliases     []string
	Action      dispatchers.Action
	Params      []paramDef
	Switches    []switchDef
	Lenient     bool
}

// BuildDispatcher returns the application's dispatcher, configured from the
// parsing keys of the config file.
func BuildDispatcher(app *domain.Application) (*dispatchers.Dispatcher, error) {
	get := func(key string) string {
		v, _ := app.Config.Get(key)
		return v
	}

	useDefault, _ := strconv.ParseBool(get("use_default_command"))

	d := dispatchers.New(
		dispatchers.WithProgramName(ProgramName),
		dispatchers.WithLogger(app.Logger),
		dispatchers.WithOutput(app.Output),
		dispatchers.WithStyler(app.Styler),
		dispatchers.WithUseDefaultCommand(useDefault),
		dispatchers.WithDefaultCommand(get("default_command")),
	)
	if err := d.SetMarkers(get("switch_marker"), get("param_marker")); err != nil {
		return nil, err
	}

	for _, g := range GlobalParams {
		if err := d.ConfigureGlobalParameterWithDescription(g.Name, g.Mandatory, g.Default, g.Description); err != nil {
			return nil, err
		}
	}

	for _, entry := range commandEntries(app, get("history_limit")) {
		cmd, err := entry.build()
		if err != nil {
			return nil, err
		}
		if err := d.ConfigureCommand(cmd); err != nil {
			return nil, err
		}
	}

	if name := get("default_command"); name != "" {
		if _, ok := d.Command(name); !ok {
			return nil, usage.InvalidConfiguration("default_command %q is not a registered command", name)
		}
	}

	return d, nil
}

func commandEntries(app *domain.Application, historyLimit string) []commandEntry {
	return []commandEntry{
		{
			Name:        "config",
			Description: "Get, set, unset or list configuration keys",
			Category:    CategoryConfig,
			Action:      config.Command(app.Config),
			Params:      ConfigParams,
		},
		{
			Name:        "history",
			Description: "Show or clear the recorded invocations",
			Category:    CategoryConfig,
			Action:      history.Command(app.History),
			Params:      historyParams(historyLimit),
			Switches:    HistorySwitches,
		},
		{
			Name:        "theme",
			Description: "List the color themes or select one",
			Category:    CategoryConfig,
			Action:      theme.Command(app.Config),
			Params:      ThemeParams,
		},
		{
			Name:        "logs",
			Description: "Show, follow or clear the log file",
			Category:    CategoryConfig,
			Action:      logs.Command(app.LogPath),
			Params:      LogsParams,
			Switches:    LogsSwitches,
		},
		{
			Name:        "addpath",
			Description: "Print the statement that adds shellshell to PATH",
			Category:    CategoryShell,
			Action:      addpath.AddPath,
			Switches:    AddPathSwitches,
		},
		{
			Name:        "completions",
			Description: "Print or install a shell completion script",
			Category:    CategoryShell,
			Action:      completions.Completions,
			Params:      CompletionsParams,
			Switches:    CompletionsSwitches,
		},
		{
			Name:        "browse",
			Description: "Browse commands interactively",
			Category:    CategoryInfo,
			Action:      browse.Browse,
		},
		{
			Name:        "version",
			Description: "Show version",
			Category:    CategoryInfo,
			Action:      actions.ShowVersion,
		},
		{
			Name:        "deploy",
			Description: "Deploy to an environment",
			Category:    CategoryDemo,
			Aliases:     []string{"ship"},
			Action:      demo.Deploy,
			Params:      DeployParams,
			Switches:    DeploySwitches,
		},
		{
			Name:        "build",
			Description: "Build with a number of jobs",
			Category:    CategoryDemo,
			Action:      demo.Build,
			Params:      BuildParams,
			Switches:    BuildSwitches,
		},
		{
			Name:        "run",
			Description: "Run a target; extra arguments are passed through",
			Category:    CategoryDemo,
			Action:      demo.Run,
			Params:      RunParams,
			Lenient:     true,
		},
	}
}

func (s commandEntry) build() (*dispatchers.Command, error) {
	opts := []dispatchers.CommandOption{
		dispatchers.WithDescription(s.Description),
		dispatchers.WithCategory(s.Category),
	}
	if len(s.Aliases) > 0 {
		opts = append(opts, dispatchers.WithAliases(s.Aliases...))
	}
	if s.Lenient {
		opts = append(opts, dispatchers.WithLenientParameters())
	}

	cmd := dispatchers.NewCommand(s.Name, s.Action, opts...)
	for _, p := range s.Params {
		if err := cmd.ConfigureParameterWithDescription(p.Name, p.Mandatory, p.Default, p.Description); err != nil {
			return nil, err
		}
	}
	for _, sw := range s.Switches {
		if err := cmd.ConfigureSwitchWithDescription(sw.Name, false, sw.Description); err != nil {
			return nil, err
		}
	}
	return cmd, nil
}
