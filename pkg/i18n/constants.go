package i18n

import "strings"

// newConstantsReplacer builds a replacer that swaps every %NAME% token for the
// value of the constant NAME. Tokens naming unknown constants are left as is.
// Returns nil when there is nothing to replace.
func newConstantsReplacer(constants map[string]string) *strings.Replacer {
	if len(constants) == 0 {
		return nil
	}

	pairs := make([]string, 0, len(constants)*2)
	for name, value := range constants {
		pairs = append(pairs, "%"+name+"%", value)
	}

	return strings.NewReplacer(pairs...)
}
