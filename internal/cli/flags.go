package cli

// switchDef declares a command switch. Every switch starts off.
type switchDef struct {
	Name        string
	Description string
}

var (
	HistorySwitches = []switchDef{
		{Name: "clear", Description: "Delete every recorded invocation"},
		{Name: "json", Description: "Output entries as JSON"},
	}

	LogsSwitches = []switchDef{
		{Name: "follow", Description: "Print new lines as they are written"},
		{Name: "clear", Description: "Empty the log file"},
		{Name: "json", Description: "Output lines as JSON"},
	}

	AddPathSwitches = []switchDef{
		{Name: "check", Description: "Only report whether the directory is on PATH"},
	}

	CompletionsSwitches = []switchDef{
		{Name: "install", Description: "Write the script to the shell's auto-load directory"},
		{Name: "instructions", Description: "Explain how to load the script"},
	}

	DeploySwitches = []switchDef{
		{Name: "dry", Description: "Print the plan without deploying"},
	}

	BuildSwitches = []switchDef{
		{Name: "verbose", Description: "Print every build step"},
	}
)
