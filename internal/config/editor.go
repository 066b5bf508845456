package config

import "strings"

// Set replaces the value of key in lines, keeping an inline comment. A
// commented placeholder ("# key=") is activated when the key is not set yet;
// otherwise the key is appended. The bool reports whether an existing line
// was updated.
func Set(lines []string, key, value string) ([]string, bool) {
	entry := key + "=" + quoteValue(value)
	placeholder := -1

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, "#") {
			if placeholder < 0 && strings.TrimSpace(strings.TrimPrefix(trimmed, "#")) == key+"=" {
				placeholder = i
			}
			continue
		}

		name, oldValue, ok := strings.Cut(trimmed, "=")
		if !ok || strings.TrimSpace(name) != key {
			continue
		}

		if idx := strings.Index(oldValue, " #"); idx >= 0 && !strings.HasPrefix(strings.TrimSpace(oldValue), "\"") {
			lines[i] = entry + " " + strings.TrimSpace(oldValue[idx:])
		} else {
			lines[i] = entry
		}
		return lines, true
	}

	if placeholder >= 0 {
		lines[placeholder] = entry
		return lines, false
	}

	return append(lines, entry), false
}

// Unset removes every active line for key. The bool reports whether any was removed.
func Unset(lines []string, key string) ([]string, bool) {
	var out []string
	removed := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			out = append(out, line)
			continue
		}

		name, _, ok := strings.Cut(trimmed, "=")
		if ok && strings.TrimSpace(name) == key {
			removed = true
			continue
		}

		out = append(out, line)
	}

	return out, removed
}
