package config

import (
	"fmt"
	"strconv"
	"strings"
)

// value is a raw TOML value with its source line for error reporting.
type value struct {
	raw  string
	line int
}

func (v value) str(dst *string) error {
	if len(v.raw) < 2 || v.raw[0] != '"' || v.raw[len(v.raw)-1] != '"' {
		return fmt.Errorf("expected string, got %s (line %d)", v.raw, v.line)
	}
	s, err := strconv.Unquote(v.raw)
	if err != nil {
		return fmt.Errorf("bad string %s (line %d)", v.raw, v.line)
	}
	*dst = s
	return nil
}

func (v value) boolean(dst *bool) error {
	switch v.raw {
	case "true":
		*dst = true
	case "false":
		*dst = false
	default:
		return fmt.Errorf("expected bool, got %s (line %d)", v.raw, v.line)
	}
	return nil
}

func (v value) integer(dst *int) error {
	n, err := strconv.Atoi(strings.ReplaceAll(v.raw, "_", ""))
	if err != nil {
		return fmt.Errorf("expected integer, got %s (line %d)", v.raw, v.line)
	}
	*dst = n
	return nil
}

// parseTOML scans line-oriented TOML into dotted-key/value pairs.
// Section headers prefix subsequent keys: [display] + driver = "x"
// yields "display.driver".
func parseTOML(data []byte) (map[string]value, error) {
	values := make(map[string]value)
	section := ""

	for i, line := range strings.Split(string(data), "\n") {
		lineNo := i + 1
		s := strings.TrimSpace(line)

		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}

		if strings.HasPrefix(s, "[") {
			if !strings.HasSuffix(s, "]") {
				return nil, fmt.Errorf("config: malformed section header on line %d", lineNo)
			}
			section = strings.TrimSpace(s[1 : len(s)-1])
			if section == "" {
				return nil, fmt.Errorf("config: empty section name on line %d", lineNo)
			}
			continue
		}

		eq := indexUnquoted(s, '=')
		if eq < 0 {
			return nil, fmt.Errorf("config: expected key = value on line %d", lineNo)
		}

		key := strings.TrimSpace(s[:eq])
		raw := strings.TrimSpace(stripComment(s[eq+1:]))
		if key == "" || raw == "" {
			return nil, fmt.Errorf("config: expected key = value on line %d", lineNo)
		}

		if section != "" {
			key = section + "." + key
		}
		if _, dup := values[key]; dup {
			return nil, fmt.Errorf("config: duplicate key %q on line %d", key, lineNo)
		}
		values[key] = value{raw: raw, line: lineNo}
	}

	return values, nil
}

// indexUnquoted finds the first occurrence of c outside double quotes
func indexUnquoted(s string, c byte) int {
	inStr := false
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '"' && (i == 0 || s[i-1] != '\\'):
			inStr = !inStr
		case s[i] == c && !inStr:
			return i
		}
	}
	return -1
}

// stripComment removes a trailing # comment outside quotes
func stripComment(s string) string {
	if i := indexUnquoted(s, '#'); i >= 0 {
		return s[:i]
	}
	return s
}
