package config

import "github.com/footprint-tools/shellshell/internal/domain"

// Provider implements domain.ConfigProvider over one config file. Values
// missing from the file fall back to the registered defaults.
type Provider struct {
	file *File
}

// NewProvider returns a provider for ~/.shellshellrc. The home directory is
// looked up on every call.
func NewProvider() *Provider {
	return &Provider{}
}

// NewProviderAt returns a provider for the config file at path.
func NewProviderAt(path string) *Provider {
	return &Provider{file: NewFile(path)}
}

func (p *Provider) target() (*File, error) {
	if p.file != nil {
		return p.file, nil
	}
	return DefaultFile()
}

func (p *Provider) Get(key string) (string, bool) {
	if f, err := p.target(); err == nil {
		if cfg, err := f.Load(); err == nil {
			if v, ok := cfg[key]; ok {
				return v, true
			}
		}
	}
	return Default(key)
}

// GetAll returns every registered key with its effective value, plus any
// unregistered keys the file sets. An unreadable file yields the defaults.
func (p *Provider) GetAll() (map[string]string, error) {
	result := make(map[string]string, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		result[key.Name] = key.Default
	}

	f, err := p.target()
	if err != nil {
		return result, nil
	}
	cfg, err := f.Load()
	if err != nil {
		return result, nil
	}
	for k, v := range cfg {
		result[k] = v
	}
	return result, nil
}

// Set writes key=value, rewriting the file under the config lock.
func (p *Provider) Set(key, value string) error {
	f, err := p.target()
	if err != nil {
		return err
	}
	return f.Edit(func(lines []string) []string {
		lines, _ = Set(lines, key, value)
		return lines
	})
}

// Unset removes key from the file so its default applies again.
func (p *Provider) Unset(key string) error {
	f, err := p.target()
	if err != nil {
		return err
	}
	return f.Edit(func(lines []string) []string {
		lines, _ = Unset(lines, key)
		return lines
	})
}

var _ domain.ConfigProvider = (*Provider)(nil)
