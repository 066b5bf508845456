package dispatchers

// CategoryBuiltin is the heading of commands the dispatcher registers itself.
const CategoryBuiltin = "built-in commands"

const uncategorizedHeading = "other commands"

// CommandGroup is a help heading with the commands listed under it.
type CommandGroup struct {
	Heading  string
	Commands []*Command
}

// CommandGroups returns the registered commands grouped for display.
func (d *Dispatcher) CommandGroups() []CommandGroup {
	return groupByCategory(d.Commands())
}

// groupByCategory groups commands under their category heading. Groups are
// ordered by the first registered command of each category, and commands keep
// registration order inside a group. Commands without a category come last.
func groupByCategory(cmds []*Command) []CommandGroup {
	var groups []CommandGroup
	index := make(map[string]int)
	var other []*Command

	for _, c := range cmds {
		if c.category == "" {
			other = append(other, c)
			continue
		}
		i, ok := index[c.category]
		if !ok {
			i = len(groups)
			index[c.category] = i
			groups = append(groups, CommandGroup{Heading: c.category})
		}
		groups[i].Commands = append(groups[i].Commands, c)
	}

	if len(other) > 0 {
		groups = append(groups, CommandGroup{Heading: uncategorizedHeading, Commands: other})
	}
	return groups
}
