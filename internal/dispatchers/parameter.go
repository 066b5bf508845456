package dispatchers

import (
	"strconv"
	"strings"

	"github.com/footprint-tools/shellshell/internal/usage"
)

// Parameter is a named key/value slot owned by a command or by the dispatcher.
// The name never changes after creation.
type Parameter struct {
	name         string
	mandatory    bool
	defaultValue string
	description  string
	value        paramValue
}

// paramValue holds the raw string and, once requested, the outcome of
// parsing it as an integer. Any write discards the cached outcome.
type paramValue struct {
	raw      string
	assigned bool
	parsed   bool
	n        int
	valid    bool
}

// NewParameter creates a parameter whose current value is its default.
func NewParameter(name string, mandatory bool, defaultValue string) *Parameter {
	return &Parameter{
		name:         name,
		mandatory:    mandatory,
		defaultValue: defaultValue,
		value:        paramValue{raw: defaultValue},
	}
}

func (p *Parameter) Name() string        { return p.name }
func (p *Parameter) Mandatory() bool     { return p.mandatory }
func (p *Parameter) Default() string     { return p.defaultValue }
func (p *Parameter) Description() string { return p.description }

// Value returns the current raw value.
func (p *Parameter) Value() string {
	return p.value.raw
}

// Assigned reports whether the value was set after creation, either from the
// token stream or by an explicit Set.
func (p *Parameter) Assigned() bool {
	return p.value.assigned
}

// Set replaces the current value.
func (p *Parameter) Set(v string) {
	p.value = paramValue{raw: v, assigned: true}
}

// Reset restores the default value.
func (p *Parameter) Reset() {
	p.value = paramValue{raw: p.defaultValue}
}

// Int returns the value parsed as a base-10 integer. Surrounding whitespace
// is ignored.
func (p *Parameter) Int() (int, error) {
	if !p.value.parsed {
		n, err := strconv.Atoi(strings.TrimSpace(p.value.raw))
		p.value.parsed = true
		p.value.n = n
		p.value.valid = err == nil
	}
	if !p.value.valid {
		return 0, usage.InvalidParameterType(p.name, p.value.raw)
	}
	return p.value.n, nil
}

// satisfied reports whether a mandatory parameter already holds a usable value
// before any token is scanned.
func (p *Parameter) satisfied() bool {
	return p.value.assigned || p.value.raw != ""
}

func (p *Parameter) clone() *Parameter {
	c := *p
	return &c
}

func cloneParameters(params []*Parameter) []*Parameter {
	out := make([]*Parameter, len(params))
	for i, p := range params {
		out[i] = p.clone()
	}
	return out
}

func findParameter(params []*Parameter, name string) *Parameter {
	for _, p := range params {
		if p.name == name {
			return p
		}
	}
	return nil
}
