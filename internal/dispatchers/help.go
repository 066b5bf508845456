package dispatchers

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/footprint-tools/shellshell/internal/domain"
	"github.com/footprint-tools/shellshell/internal/usage"
)

// helpAction lists the registered commands, or describes the one named by
// the cmd parameter.
func (d *Dispatcher) helpAction(res *Resolution) error {
	name, err := res.GetParameterAsString(HelpCommandParameter)
	if err != nil {
		return err
	}

	if name == "" {
		d.output.Pager(d.RenderCommandList())
		return nil
	}

	cmd, ok := d.Command(name)
	if !ok {
		suggestions := FindSimilarCommands(name, d.CommandNames(), defaultSuggestionsCount)
		return usage.NoCommandSelected(name, suggestions...)
	}

	d.output.Pager(d.RenderCommandHelp(cmd))
	return nil
}

// formatUsage styles the usage line with the command in Info color and the rest muted.
func formatUsage(s domain.Styler, line string) string {
	// Find where the command ends (first [ or <)
	cmdEnd := len(line)
	for i, c := range line {
		if c == '[' || c == '<' {
			cmdEnd = i
			break
		}
	}

	cmd := strings.TrimSpace(line[:cmdEnd])
	rest := ""
	if cmdEnd < len(line) {
		rest = line[cmdEnd:]
	}

	if rest == "" {
		return s.Info(cmd)
	}
	return s.Info(cmd) + " " + s.Muted(rest)
}

// UsageLine returns the one-line synopsis of a command: positional
// parameters in order (mandatory in angle brackets), then its switches.
func (d *Dispatcher) UsageLine(cmd *Command) string {
	parts := []string{d.programName, cmd.name}
	for _, p := range cmd.parameters {
		if p.mandatory {
			parts = append(parts, "<"+p.name+">")
		} else {
			parts = append(parts, "["+p.name+"]")
		}
	}
	marker := d.SwitchMarker()
	for _, s := range cmd.switchOrder {
		parts = append(parts, "["+marker+s+"]")
	}
	return strings.Join(parts, " ")
}

// RenderCommandList renders the overview printed by help without arguments.
func (d *Dispatcher) RenderCommandList() string {
	var out bytes.Buffer
	s := d.styler

	out.WriteString(s.Header(d.programName))
	out.WriteString("\n\n")

	out.WriteString("USAGE\n   ")
	out.WriteString(formatUsage(s, d.programName+" <command> [parameters] [switches]"))
	out.WriteString("\n\n")

	for _, group := range groupByCategory(d.Commands()) {
		out.WriteString(strings.ToUpper(group.Heading))
		out.WriteString("\n")
		for _, cmd := range group.Commands {
			fmt.Fprintf(&out, "   %s  %s\n", s.Info(fmt.Sprintf("%-16s", cmd.name)), cmd.description)
		}
		out.WriteString("\n")
	}

	if globals := d.GlobalParameters(); len(globals) > 0 {
		out.WriteString("GLOBAL PARAMETERS\n")
		d.writeParameters(&out, globals)
		out.WriteString("\n")
	}

	fmt.Fprintf(&out, "See '%s %s <command>' for details on a specific command.\n", d.programName, HelpCommandName)
	return out.String()
}

// RenderCommandHelp renders the description of one command.
func (d *Dispatcher) RenderCommandHelp(cmd *Command) string {
	var out bytes.Buffer
	s := d.styler

	out.WriteString(s.Header(cmd.name))
	if cmd.description != "" {
		out.WriteString(" - ")
		out.WriteString(cmd.description)
	}
	out.WriteString("\n\n")

	out.WriteString("USAGE\n   ")
	out.WriteString(formatUsage(s, d.UsageLine(cmd)))
	out.WriteString("\n\n")

	if len(cmd.aliases) > 0 {
		out.WriteString("ALIASES\n   ")
		out.WriteString(strings.Join(cmd.aliases, ", "))
		out.WriteString("\n\n")
	}

	if len(cmd.parameters) > 0 {
		out.WriteString("PARAMETERS\n")
		d.writeParameters(&out, cmd.parameters)
		out.WriteString("\n")
	}

	if len(cmd.switchOrder) > 0 {
		out.WriteString("SWITCHES\n")
		marker := d.SwitchMarker()
		for _, name := range cmd.switchOrder {
			fmt.Fprintf(&out, "   %s  %s\n", s.Info(fmt.Sprintf("%-24s", marker+name)), cmd.switchHelp[name])
		}
		out.WriteString("\n")
	}

	fmt.Fprintf(&out, "See '%s %s' for the list of commands.\n", d.programName, HelpCommandName)
	return out.String()
}

func (d *Dispatcher) writeParameters(out *bytes.Buffer, params []*Parameter) {
	s := d.styler
	marker := d.ParamMarker()
	for _, p := range params {
		name := marker + p.name + " <value>"
		desc := p.description
		var notes []string
		if p.mandatory {
			notes = append(notes, "mandatory")
		}
		if p.defaultValue != "" {
			notes = append(notes, "default: "+p.defaultValue)
		}
		if len(notes) > 0 {
			if desc != "" {
				desc += " "
			}
			desc += s.Muted("(" + strings.Join(notes, ", ") + ")")
		}
		fmt.Fprintf(out, "   %s  %s\n", s.Info(fmt.Sprintf("%-24s", name)), desc)
	}
}
