package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/footprint-tools/shellshell/internal/domain"
	"github.com/footprint-tools/shellshell/internal/ui/style"
)

// validateValue rejects values the application could not start with.
func validateValue(key, value string) error {
	k, ok := domain.LookupConfigKey(key)
	if !ok {
		return unknownKey(key)
	}
	if err := k.Validate(value); err != nil {
		return err
	}

	if key == "theme" {
		base := strings.TrimSuffix(strings.TrimSuffix(value, "-dark"), "-light")
		if !slices.Contains(style.BaseThemeNames, base) {
			return fmt.Errorf("config: unknown theme %q (available: %s)", value, strings.Join(style.BaseThemeNames, ", "))
		}
	}
	return nil
}
