// Package config implements the config command: get, set, unset and list
// keys of the user's config file.
package config

import (
	"fmt"
	"strings"

	"github.com/footprint-tools/shellshell/internal/dispatchers"
	"github.com/footprint-tools/shellshell/internal/domain"
	"github.com/footprint-tools/shellshell/internal/usage"
)

// Operations accepted by the op parameter.
const (
	OpList  = "list"
	OpGet   = "get"
	OpSet   = "set"
	OpUnset = "unset"
)

// Command returns the action of the config command. It reads the positional
// parameters op, key and value.
func Command(provider domain.ConfigProvider) dispatchers.Action {
	return func(res *dispatchers.Resolution) error {
		d := res.Dispatcher()
		deps := DefaultDeps(provider, d.Output(), d.Styler())
		return run(res.String("op", OpList), res.String("key", ""), res.String("value", ""), deps)
	}
}

func run(op, key, value string, deps Deps) error {
	switch op {
	case OpList:
		return list(deps)
	case OpGet:
		return get(key, deps)
	case OpSet:
		return set(key, value, deps)
	case OpUnset:
		return unset(key, deps)
	default:
		return fmt.Errorf("config: unknown operation %q (expected %s)", op, strings.Join([]string{OpList, OpGet, OpSet, OpUnset}, ", "))
	}
}

func get(key string, deps Deps) error {
	if err := requireKey(key); err != nil {
		return err
	}

	value, found := deps.Get(key)
	if !found {
		return unknownKey(key)
	}

	_, _ = deps.Println(value)
	return nil
}

func set(key, value string, deps Deps) error {
	if err := requireKey(key); err != nil {
		return err
	}
	if value == "" {
		return usage.MissingMandatoryParameters([]string{"value"})
	}
	if err := validateValue(key, value); err != nil {
		return err
	}

	if err := deps.Set(key, value); err != nil {
		return fmt.Errorf("config: write %s: %w", key, err)
	}

	_, _ = deps.Printf("%s %s=%s\n", deps.Styler.Success("set"), key, value)
	return nil
}

func unset(key string, deps Deps) error {
	if err := requireKey(key); err != nil {
		return err
	}

	if err := deps.Unset(key); err != nil {
		return fmt.Errorf("config: write %s: %w", key, err)
	}

	def, _ := domain.GetDefaultValue(key)
	_, _ = deps.Printf("%s %s %s\n", deps.Styler.Success("unset"), key, deps.Styler.Muted("(default: "+def+")"))
	return nil
}

func list(deps Deps) error {
	values, err := deps.GetAll()
	if err != nil {
		return err
	}

	for i, section := range domain.Sections {
		keys := domain.ConfigKeysIn(section)
		if len(keys) == 0 {
			continue
		}
		if i > 0 {
			_, _ = deps.Println()
		}
		_, _ = deps.Println(deps.Styler.Header(string(section)))

		for _, key := range keys {
			value := values[key.Name]
			if key.Optional && value == "" {
				continue
			}
			line := fmt.Sprintf("  %s=%s", key.Name, value)
			if value == key.Default {
				line += " " + deps.Styler.Muted("(default)")
			}
			_, _ = deps.Println(line)
		}
	}

	return nil
}

func requireKey(key string) error {
	if key == "" {
		return usage.MissingMandatoryParameters([]string{"key"})
	}
	if _, ok := domain.LookupConfigKey(key); !ok {
		return unknownKey(key)
	}
	return nil
}

func unknownKey(key string) error {
	msg := fmt.Sprintf("config: unknown key %q", key)
	if similar := dispatchers.FindSimilarCommands(key, domain.ConfigKeyNames(), 3); len(similar) > 0 {
		msg += "; did you mean " + strings.Join(similar, ", ") + "?"
	}
	return fmt.Errorf("%s", msg)
}
