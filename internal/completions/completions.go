// Package completions generates shell completion scripts from the commands
// registered on a dispatcher.
package completions

import (
	"github.com/footprint-tools/shellshell/internal/dispatchers"
)

// CommandInfo represents a command extracted from the dispatcher.
type CommandInfo struct {
	Name       string
	Aliases    []string
	Summary    string
	Parameters []OptionInfo
	Switches   []OptionInfo
}

// OptionInfo is a completable token: a marked parameter or switch name.
type OptionInfo struct {
	Token       string // e.g. "-target" or "/dry"
	Description string
}

// Script holds everything a generator needs.
type Script struct {
	Program  string
	Commands []CommandInfo
	Globals  []OptionInfo
}

// Extract reads the registered commands and global parameters of d, with
// tokens spelled using its current markers.
func Extract(d *dispatchers.Dispatcher) Script {
	switchMarker := d.SwitchMarker()
	paramMarker := d.ParamMarker()

	s := Script{Program: d.ProgramName()}

	for _, g := range d.GlobalParameters() {
		s.Globals = append(s.Globals, OptionInfo{
			Token:       paramMarker + g.Name(),
			Description: g.Description(),
		})
	}

	for _, cmd := range d.Commands() {
		info := CommandInfo{
			Name:    cmd.Name(),
			Aliases: cmd.Aliases(),
			Summary: cmd.Description(),
		}
		for _, p := range cmd.Parameters() {
			info.Parameters = append(info.Parameters, OptionInfo{
				Token:       paramMarker + p.Name(),
				Description: p.Description(),
			})
		}
		for _, name := range cmd.Switches() {
			info.Switches = append(info.Switches, OptionInfo{
				Token:       switchMarker + name,
				Description: cmd.SwitchDescription(name),
			})
		}
		s.Commands = append(s.Commands, info)
	}

	return s
}

// FindCommand finds a command by name or alias.
func FindCommand(commands []CommandInfo, name string) *CommandInfo {
	for i := range commands {
		if commands[i].Name == name {
			return &commands[i]
		}
		for _, alias := range commands[i].Aliases {
			if alias == name {
				return &commands[i]
			}
		}
	}
	return nil
}

// options returns the tokens completable after the command name: its
// parameters, its switches, then the globals.
func (s Script) options(cmd CommandInfo) []OptionInfo {
	var out []OptionInfo
	out = append(out, cmd.Parameters...)
	out = append(out, cmd.Switches...)
	out = append(out, s.Globals...)
	return out
}

func (c CommandInfo) names() []string {
	return append([]string{c.Name}, c.Aliases...)
}
