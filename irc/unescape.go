package irc

import "strings"

// Unescaped lazily applies the tag-value escape mapping from spec.md §4.6.
// Value holds the raw, still-escaped text; nothing is rewritten until Get
// is called. Get performs the rewrite (and allocates) only if a backslash
// is actually present — the common case of an unescaped value returns
// Value unchanged with no allocation. The result is not cached: each Get
// call on an escaped value rewrites it again.
type Unescaped struct {
	Value string
}

// Get returns the unescaped text.
func (u Unescaped) Get() string {
	if !strings.ContainsRune(u.Value, '\\') {
		return u.Value
	}
	return unescapeTagValue(u.Value)
}

// unescapeTagValue implements the mapping table in spec.md §4.6:
//
//	\s -> ' '   \: -> ';'   \\ -> '\'   \r -> CR   \n -> LF
//	\<anything else> -> drop the backslash, keep the byte
//	a trailing lone backslash is dropped
func unescapeTagValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		if i+1 >= len(s) {
			break // trailing lone backslash: dropped
		}
		i++
		switch s[i] {
		case 's':
			b.WriteByte(' ')
		case ':':
			b.WriteByte(';')
		case '\\':
			b.WriteByte('\\')
		case 'r':
			b.WriteByte('\r')
		case 'n':
			b.WriteByte('\n')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
