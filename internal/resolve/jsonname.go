package resolve

import "strings"

// defaultJSONName implements protobuf's standard lowerCamelCase
// conversion, used whenever a field does not declare json_name
// explicitly: each underscore is dropped and the following letter is
// uppercased.
func defaultJSONName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	upperNext := false
	for _, r := range name {
		if r == '_' {
			upperNext = true
			continue
		}
		if upperNext && r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		upperNext = false
		b.WriteRune(r)
	}
	return b.String()
}
