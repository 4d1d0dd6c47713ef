package names

import "strings"

// DefaultNamespace is the namespace assigned to tokens without an explicit one.
const DefaultNamespace = "base"

// Separator splits a token into value and namespace.
const Separator = "."

// Name is a single token resolved into its namespace and value.
type Name struct {
	// Namespace is the explicit namespace, or DefaultNamespace.
	Namespace string

	// Value is the bare event value with any namespace suffix stripped.
	Value string

	// Original is the unparsed token. It is kept for diagnostics only.
	Original string
}

// IsDefault returns true if the name resolved to the default namespace.
func (n Name) IsDefault() bool {
	return n.Namespace == DefaultNamespace
}

// IsEmpty returns true if the name carries neither a value nor an explicit namespace.
func (n Name) IsEmpty() bool {
	return n.Value == "" && n.IsDefault()
}

// String returns the canonical form of the name.
//
// Example: {menu click} -> "click.menu", {base click} -> "click"
func (n Name) String() string {
	if n.IsDefault() {
		return n.Value
	}
	return n.Value + Separator + n.Namespace
}

// Split breaks a raw multi-name string into tokens.
//
// Characters other than ASCII letters, digits, space, comma, slash and dot are
// dropped, each run of commas and slashes becomes a single space, and the
// result is split on single spaces. Empty tokens are kept; callers filter them.
func Split(raw string) []string {
	var b strings.Builder
	b.Grow(len(raw))

	inSeparatorRun := false
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c == ',' || c == '/':
			if !inSeparatorRun {
				b.WriteByte(' ')
				inSeparatorRun = true
			}
			continue
		case isNameChar(c):
			b.WriteByte(c)
		default:
			// Dropped characters do not end a separator run
			continue
		}
		inSeparatorRun = false
	}

	return strings.Split(b.String(), " ")
}

// isNameChar reports whether c survives sanitization and is not a comma or slash.
func isNameChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == ' ' || c == '.':
		return true
	default:
		return false
	}
}

// Parse resolves one token into a Name.
//
// The value is the text before the first dot. The namespace is the text
// between the first and second dot when it is non-empty, and DefaultNamespace
// otherwise.
func Parse(token string) Name {
	n := Name{
		Namespace: DefaultNamespace,
		Original:  token,
	}

	parts := strings.Split(token, Separator)
	n.Value = parts[0]
	if len(parts) > 1 && parts[1] != "" {
		n.Namespace = parts[1]
	}

	return n
}

// Resolve splits raw and parses every token, in order.
func Resolve(raw string) []Name {
	tokens := Split(raw)
	result := make([]Name, len(tokens))
	for i, tok := range tokens {
		result[i] = Parse(tok)
	}
	return result
}

// First resolves only the first token of raw.
func First(raw string) Name {
	return Parse(Split(raw)[0])
}
