package config

import (
	"fmt"
	"strings"
)

// Parse turns config lines into a key/value map. Blank lines and lines
// starting with # are skipped. Values may be wrapped in double quotes and
// may carry a trailing " # comment". A later key overrides an earlier one.
func Parse(lines []string) (map[string]string, error) {
	cfg := make(map[string]string)

	for i, line := range lines {
		if i == 0 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, ok := strings.Cut(trimmed, "=")
		if !ok {
			return nil, fmt.Errorf("config: line %d: expected key=value, got %q", i+1, trimmed)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("config: line %d: empty key", i+1)
		}

		cfg[key] = parseValue(value)
	}

	return cfg, nil
}

func parseValue(raw string) string {
	value := strings.TrimSpace(raw)

	if strings.HasPrefix(value, "\"") {
		if end := strings.Index(value[1:], "\""); end >= 0 {
			return value[1 : end+1]
		}
	}

	if idx := strings.Index(value, " #"); idx >= 0 {
		value = strings.TrimSpace(value[:idx])
	}
	return value
}

// quoteValue wraps values containing spaces so Parse reads them back intact.
func quoteValue(value string) string {
	if strings.ContainsAny(value, " \t#") {
		return "\"" + value + "\""
	}
	return value
}
