package domain

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Section groups config keys in the config file and in `config list`.
type Section string

const (
	SectionParsing Section = "Parsing"
	SectionDisplay Section = "Display"
	SectionLogging Section = "Logging"
	SectionHistory Section = "History"
)

// Sections lists the sections in display order.
var Sections = []Section{SectionParsing, SectionDisplay, SectionLogging, SectionHistory}

// ValueKind tells Validate what a key accepts.
type ValueKind int

const (
	KindText ValueKind = iota
	KindMarker
	KindBool
	KindPositiveInt
	KindChoice
)

// ConfigKey describes one configuration key.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     Section
	Kind        ValueKind
	// Choices holds the accepted values of a KindChoice key.
	Choices []string
	// Optional keys are listed only once the user sets them.
	Optional bool
}

// Validate reports whether value is acceptable for the key.
func (k ConfigKey) Validate(value string) error {
	switch k.Kind {
	case KindMarker:
		if value == "" || strings.ContainsAny(value, " \t") {
			return fmt.Errorf("config: %s must be non-empty and contain no whitespace", k.Name)
		}
	case KindBool:
		if value != "true" && value != "false" {
			return fmt.Errorf("config: %s must be true or false, got %q", k.Name, value)
		}
	case KindPositiveInt:
		if n, err := strconv.Atoi(value); err != nil || n < 1 {
			return fmt.Errorf("config: %s must be a positive integer, got %q", k.Name, value)
		}
	case KindChoice:
		if !slices.Contains(k.Choices, value) {
			return fmt.Errorf("config: %s must be one of %s, got %q", k.Name, strings.Join(k.Choices, ", "), value)
		}
	}
	return nil
}

// ConfigKeys is every known key, in the order `config list` shows them.
var ConfigKeys = []ConfigKey{
	{Name: "switch_marker", Default: "/", Section: SectionParsing, Kind: KindMarker,
		Description: "Prefix that marks a switch token"},
	{Name: "param_marker", Default: "-", Section: SectionParsing, Kind: KindMarker,
		Description: "Prefix that marks a named parameter token"},
	{Name: "use_default_command", Default: "false", Section: SectionParsing, Kind: KindBool,
		Description: "Fall back to the default command when none is given (true/false)"},
	{Name: "default_command", Section: SectionParsing, Optional: true,
		Description: "Command used by the fallback (empty: first registered)"},

	{Name: "pager", Default: "less -FRSX", Section: SectionDisplay,
		Description: "Pager command for long output"},
	{Name: "theme", Default: "default", Section: SectionDisplay,
		Description: "Color theme: default, mono, ocean"},
	{Name: "display_date", Default: "Jan 02", Section: SectionDisplay,
		Description: "Date format: dd/mm/yyyy, mm/dd/yyyy, yyyy-mm-dd, or Go format"},
	{Name: "display_time", Default: "24h", Section: SectionDisplay, Kind: KindChoice, Choices: []string{"12h", "24h"},
		Description: "Time format: 12h, 24h"},

	{Name: "enable_log", Default: "true", Section: SectionLogging, Kind: KindBool,
		Description: "Enable logging to file (true/false)"},
	{Name: "log_level", Default: "warn", Section: SectionLogging, Kind: KindChoice, Choices: []string{"debug", "info", "warn", "error"},
		Description: "Minimum log level: debug, info, warn, error"},

	{Name: "enable_history", Default: "true", Section: SectionHistory, Kind: KindBool,
		Description: "Record executed commands (true/false)"},
	{Name: "history_limit", Default: "20", Section: SectionHistory, Kind: KindPositiveInt,
		Description: "Entries shown by the history command"},
}

// LookupConfigKey finds a key by name.
func LookupConfigKey(name string) (ConfigKey, bool) {
	i := slices.IndexFunc(ConfigKeys, func(k ConfigKey) bool { return k.Name == name })
	if i < 0 {
		return ConfigKey{}, false
	}
	return ConfigKeys[i], true
}

// GetDefaultValue returns the default of a known key.
func GetDefaultValue(name string) (string, bool) {
	k, ok := LookupConfigKey(name)
	return k.Default, ok
}

// ConfigKeysIn returns the keys of one section in display order.
func ConfigKeysIn(section Section) []ConfigKey {
	var keys []ConfigKey
	for _, k := range ConfigKeys {
		if k.Section == section {
			keys = append(keys, k)
		}
	}
	return keys
}

// ConfigKeyNames returns every key name, for suggestions.
func ConfigKeyNames() []string {
	names := make([]string, len(ConfigKeys))
	for i, k := range ConfigKeys {
		names[i] = k.Name
	}
	return names
}
