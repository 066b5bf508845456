package cli

// paramDef declares a command parameter. Order in a slice is positional order.
type paramDef struct {
	Name        string
	Mandatory   bool
	Default     string
	Description string
}

var (
	ConfigParams = []paramDef{
		{Name: "op", Default: "list", Description: "Operation: get, set, unset or list"},
		{Name: "key", Description: "Configuration key"},
		{Name: "value", Description: "Value to assign (set only)"},
	}

	ThemeParams = []paramDef{
		{Name: "op", Default: "list", Description: "Operation: list or set"},
		{Name: "name", Description: "Theme to select (set only)"},
	}

	LogsParams = []paramDef{
		{Name: "limit", Default: "50", Description: "Number of lines to show"},
	}

	CompletionsParams = []paramDef{
		{Name: "shell", Description: "Target shell: bash, zsh or fish (default: $SHELL)"},
	}

	DeployParams = []paramDef{
		{Name: "env", Mandatory: true, Description: "Target environment"},
		{Name: "region", Default: "eu-west-1", Description: "Target region"},
	}

	BuildParams = []paramDef{
		{Name: "jobs", Default: "1", Description: "Number of parallel jobs"},
	}

	RunParams = []paramDef{
		{Name: "target", Description: "What to run"},
		{Name: "mode", Description: "Run mode"},
	}
)

// historyParams takes the limit default from history_limit.
func historyParams(limit string) []paramDef {
	return []paramDef{
		{Name: "limit", Default: limit, Description: "Number of entries to show (0 for all)"},
	}
}

// GlobalParams are accepted by every command.
var GlobalParams = []paramDef{
	{Name: "profile", Default: "default", Description: "Profile the demo commands act on"},
}
