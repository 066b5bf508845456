package completions

import (
	"fmt"
	"io"
	"strings"
)

// Generate returns the completion script for shell.
func Generate(shell Shell, s Script) (string, error) {
	switch shell {
	case ShellBash:
		return GenerateBash(s), nil
	case ShellZsh:
		return GenerateZsh(s), nil
	case ShellFish:
		return GenerateFish(s), nil
	default:
		return "", fmt.Errorf("unsupported shell: %s", shell)
	}
}

// PrintCompletions writes the completion script for the given shell to w.
func PrintCompletions(w io.Writer, shell Shell, s Script) error {
	script, err := Generate(shell, s)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, script)
	return err
}

// GenerateBash renders a script for `complete -F`.
func GenerateBash(s Script) string {
	fn := "_" + identifier(s.Program) + "_completions"

	var top []string
	for _, cmd := range s.Commands {
		top = append(top, cmd.names()...)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s bash completion script\n", s.Program)
	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    local cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=( $(compgen -W %s -- \"$cur\") )\n", bashQuote(strings.Join(top, " ")))
	b.WriteString("        return\n")
	b.WriteString("    fi\n")
	b.WriteString("    case \"${COMP_WORDS[1]}\" in\n")
	for _, cmd := range s.Commands {
		var words []string
		for _, opt := range s.options(cmd) {
			words = append(words, opt.Token)
		}
		fmt.Fprintf(&b, "        %s)\n", strings.Join(cmd.names(), "|"))
		fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -W %s -- \"$cur\") )\n", bashQuote(strings.Join(words, " ")))
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n")
	fmt.Fprintf(&b, "complete -F %s %s\n", fn, s.Program)
	return b.String()
}

// GenerateZsh renders a #compdef script using _describe.
func GenerateZsh(s Script) string {
	fn := "_" + identifier(s.Program)

	var b strings.Builder
	fmt.Fprintf(&b, "#compdef %s\n\n", s.Program)

	fmt.Fprintf(&b, "%s_commands() {\n", fn)
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, cmd := range s.Commands {
		for _, name := range cmd.names() {
			fmt.Fprintf(&b, "        %s\n", shellQuote(zshEntry(name, cmd.Summary)))
		}
	}
	b.WriteString("    )\n")
	b.WriteString("    _describe 'command' commands\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	fmt.Fprintf(&b, "        %s_commands\n", fn)
	b.WriteString("        return\n")
	b.WriteString("    fi\n")
	b.WriteString("    local -a opts\n")
	b.WriteString("    case \"$words[2]\" in\n")
	for _, cmd := range s.Commands {
		fmt.Fprintf(&b, "        %s)\n", strings.Join(cmd.names(), "|"))
		b.WriteString("            opts=(\n")
		for _, opt := range s.options(cmd) {
			fmt.Fprintf(&b, "                %s\n", shellQuote(zshEntry(opt.Token, opt.Description)))
		}
		b.WriteString("            )\n")
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("    _describe 'option' opts\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "%s \"$@\"\n", fn)
	return b.String()
}

// GenerateFish renders one `complete` line per candidate.
func GenerateFish(s Script) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s fish completion script\n", s.Program)
	fmt.Fprintf(&b, "complete -c %s -f\n", s.Program)

	for _, cmd := range s.Commands {
		for _, name := range cmd.names() {
			fmt.Fprintf(&b, "complete -c %s -n '__fish_use_subcommand' -a %s", s.Program, shellQuote(name))
			if cmd.Summary != "" {
				fmt.Fprintf(&b, " -d %s", shellQuote(cmd.Summary))
			}
			b.WriteString("\n")
		}
	}

	for _, cmd := range s.Commands {
		cond := shellQuote("__fish_seen_subcommand_from " + strings.Join(cmd.names(), " "))
		for _, opt := range s.options(cmd) {
			fmt.Fprintf(&b, "complete -c %s -n %s -a %s", s.Program, cond, shellQuote(opt.Token))
			if opt.Description != "" {
				fmt.Fprintf(&b, " -d %s", shellQuote(opt.Description))
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// identifier turns a program name into a shell function name fragment.
func identifier(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}

// shellQuote wraps s in single quotes for POSIX shells and fish.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// bashQuote wraps a compgen word list in double quotes.
func bashQuote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "$", `\$`, "`", "\\`")
	return `"` + r.Replace(s) + `"`
}

// zshEntry formats a _describe entry; colons in the name must be escaped.
func zshEntry(name, description string) string {
	name = strings.ReplaceAll(name, ":", `\:`)
	if description == "" {
		return name
	}
	return name + ":" + description
}
