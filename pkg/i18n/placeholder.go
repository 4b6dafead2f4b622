package i18n

import (
	"fmt"
	"strings"
)

// Placeholder is the positional token replaced by String arguments.
const Placeholder = "%var%"

// ReplacePlaceholders replaces each %var% token in the template, left to right,
// with the next argument. A token with no argument left (or a nil argument)
// stays unchanged, and a nil argument does not advance to the next one.
// With no arguments the template is returned untouched.
//
// Example:
//
//	template: "Hello, %var%! You have %var% messages."
//	args:     "John", 5
//	returns:  "Hello, John! You have 5 messages."
func ReplacePlaceholders(template string, args ...any) string {
	if len(args) == 0 || !strings.Contains(template, Placeholder) {
		return template
	}

	var b strings.Builder
	b.Grow(len(template))

	next := 0
	for {
		i := strings.Index(template, Placeholder)
		if i < 0 {
			b.WriteString(template)
			break
		}

		b.WriteString(template[:i])
		if next < len(args) && args[next] != nil {
			b.WriteString(fmt.Sprint(args[next]))
			next++
		} else {
			b.WriteString(Placeholder)
		}
		template = template[i+len(Placeholder):]
	}

	return b.String()
}
