package rosetta

import (
	"regexp"
	"sort"
	"strings"
)

// Params maps placeholder names to their replacement values
type Params map[string]string

var placeholderPattern = regexp.MustCompile(`\(\$([^()$\s]+)\)`)

// Substitute replaces every ($name) in template with params[name].
// Placeholders without a value are left as they are.
//
// Example:
//
//	Substitute("Hello ($name)", Params{"name": "Ann"}) // "Hello Ann"
func Substitute(template string, params Params) string {
	if len(params) == 0 || !strings.Contains(template, "($") {
		return template
	}

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	result := template
	for _, name := range names {
		result = strings.ReplaceAll(result, "($"+name+")", params[name])
	}
	return result
}

// Placeholders returns the distinct placeholder names in template, in order
// of first appearance.
func Placeholders(template string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(template, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	names := make([]string, 0, len(matches))
	for _, match := range matches {
		name := match[1]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}
