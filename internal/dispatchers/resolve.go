package dispatchers

import (
	"strings"

	"github.com/footprint-tools/shellshell/internal/usage"
)

const defaultSuggestionsCount = 3

// Resolve selects a command for tokens and binds every switch and parameter
// token to it. tokens is the argument vector without the program name.
//
// Values are bound on copies owned by the returned Resolution, so the
// dispatcher's configuration is never changed. When the scan itself fails,
// the partially populated Resolution is returned together with the error;
// values bound before the failing token stay set.
func (d *Dispatcher) Resolve(tokens []string) (*Resolution, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if err := validateMarkers(d.switchMarker, d.paramMarker); err != nil {
		return nil, err
	}

	cmd, rest, err := d.selectCommand(tokens)
	if err != nil {
		d.logger.Warn("dispatch: %v", err)
		return nil, err
	}

	res := newResolution(d, cmd.clone(), cloneParameters(d.globals), tokens)
	pending := d.mandatorySet(res)

	s := scanner{
		res:          res,
		pending:      pending,
		switchMarker: d.switchMarker,
		paramMarker:  d.paramMarker,
	}
	if err := s.scanSwitches(rest); err != nil {
		d.logger.Warn("dispatch: %s: %v", cmd.name, err)
		return res, err
	}
	if err := s.scanParameters(rest); err != nil {
		d.logger.Warn("dispatch: %s: %v", cmd.name, err)
		return res, err
	}
	if missing := pending.names(); len(missing) > 0 {
		err := usage.MissingMandatoryParameters(missing)
		d.logger.Warn("dispatch: %s: %v", cmd.name, err)
		return res, err
	}

	d.logger.Debug("dispatch: resolved %s (id=%s)", cmd.name, res.ID)
	return res, nil
}

// Execute runs the command of a successful resolution.
func (d *Dispatcher) Execute(res *Resolution) error {
	if res == nil || res.command == nil {
		return usage.NoCommandSelected("")
	}
	d.logger.Debug("dispatch: executing %s (id=%s)", res.command.name, res.ID)
	if err := res.Execute(); err != nil {
		d.logger.Error("dispatch: %s failed: %v", res.command.name, err)
		return err
	}
	return nil
}

// Run resolves tokens and executes the selected command.
func (d *Dispatcher) Run(tokens []string) error {
	res, err := d.Resolve(tokens)
	if err != nil {
		return err
	}
	return d.Execute(res)
}

// selectCommand returns the selected command and the tokens left to scan.
// The first token is consumed only when it names a command.
func (d *Dispatcher) selectCommand(tokens []string) (*Command, []string, error) {
	if len(tokens) == 0 || strings.HasPrefix(tokens[0], d.switchMarker) {
		cmd, err := d.fallback("")
		return cmd, tokens, err
	}

	if cmd := d.lookup(tokens[0]); cmd != nil {
		d.logger.Debug("dispatch: selected command %s", cmd.name)
		return cmd, tokens[1:], nil
	}

	cmd, err := d.fallback(tokens[0])
	return cmd, tokens, err
}

func (d *Dispatcher) fallback(token string) (*Command, error) {
	if d.useDefault {
		if cmd := d.defaultLocked(); cmd != nil {
			d.logger.Debug("dispatch: falling back to default command %s", cmd.name)
			return cmd, nil
		}
	}

	var suggestions []string
	if token != "" && !strings.HasPrefix(token, d.paramMarker) {
		var names []string
		for _, c := range d.commands {
			names = append(names, c.names()...)
		}
		suggestions = FindSimilarCommands(token, names, defaultSuggestionsCount)
	}
	return nil, usage.NoCommandSelected(token, suggestions...)
}

// mandatorySet collects the parameters that still need a value. Mandatory
// parameters holding a non-empty default already count as set.
func (d *Dispatcher) mandatorySet(res *Resolution) *nameSet {
	set := newNameSet()
	if !d.globalMandatoryExceptions[res.command.name] {
		for _, p := range res.globals {
			if p.mandatory && !p.satisfied() {
				set.add(p.name)
			}
		}
	}
	for _, p := range res.command.parameters {
		if p.mandatory && !p.satisfied() {
			set.add(p.name)
		}
	}
	return set
}

type scanner struct {
	res          *Resolution
	pending      *nameSet
	switchMarker string
	paramMarker  string
}

func (s *scanner) isSwitch(tok string) bool {
	return strings.HasPrefix(tok, s.switchMarker)
}

func (s *scanner) isNamed(tok string) bool {
	return !s.isSwitch(tok) && strings.HasPrefix(tok, s.paramMarker)
}

func (s *scanner) scanSwitches(tokens []string) error {
	for _, tok := range tokens {
		if !s.isSwitch(tok) {
			continue
		}
		name := strings.TrimPrefix(tok, s.switchMarker)
		if err := s.res.command.SetSwitch(name, true); err != nil {
			return err
		}
		s.res.dispatcher.logger.Debug("dispatch: switch %s on", name)
	}
	return nil
}

func (s *scanner) scanParameters(tokens []string) error {
	cmd := s.res.command
	position := 0

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		switch {
		case s.isSwitch(tok):
			continue

		case s.isNamed(tok):
			if i == len(tokens)-1 || s.isSwitch(tokens[i+1]) || s.isNamed(tokens[i+1]) {
				return usage.MissingParameterValue(tok)
			}
			name := strings.TrimPrefix(tok, s.paramMarker)
			value := tokens[i+1]

			if g := findParameter(s.res.globals, name); g != nil {
				g.Set(value)
				s.res.dispatcher.logger.Debug("dispatch: global %s=%q", name, value)
			} else {
				if err := cmd.SetParameter(name, value); err != nil {
					return err
				}
				s.res.dispatcher.logger.Debug("dispatch: parameter %s=%q", name, value)
			}
			s.pending.remove(name)
			i++

		default:
			if position >= len(cmd.parameters) {
				if cmd.strictParam {
					return usage.UnknownParameter(cmd.name, tok)
				}
				s.res.extra = append(s.res.extra, tok)
				continue
			}
			p := cmd.parameters[position]
			p.Set(tok)
			s.pending.remove(p.name)
			s.res.positional = append(s.res.positional, tok)
			s.res.dispatcher.logger.Debug("dispatch: positional %d %s=%q", position, p.name, tok)
			position++
		}
	}
	return nil
}

// nameSet is an insertion-ordered set of parameter names.
type nameSet struct {
	order   []string
	present map[string]bool
}

func newNameSet() *nameSet {
	return &nameSet{present: make(map[string]bool)}
}

func (s *nameSet) add(name string) {
	if s.present[name] {
		return
	}
	s.present[name] = true
	s.order = append(s.order, name)
}

func (s *nameSet) remove(name string) {
	delete(s.present, name)
}

func (s *nameSet) names() []string {
	var out []string
	for _, n := range s.order {
		if s.present[n] {
			out = append(out, n)
		}
	}
	return out
}
