package config

import "github.com/footprint-tools/shellshell/internal/domain"

// Default returns the built-in value of a config key.
func Default(key string) (string, bool) {
	return domain.GetDefaultValue(key)
}

// Get returns the value of key in ~/.shellshellrc, or its default.
func Get(key string) (string, bool) {
	return NewProvider().Get(key)
}

// GetAll returns the effective values of ~/.shellshellrc merged over the
// defaults.
func GetAll() (map[string]string, error) {
	return NewProvider().GetAll()
}
