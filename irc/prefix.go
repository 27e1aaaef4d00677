package irc

import "strings"

// Prefix is the optional `:nick!user@host` (or `:nick@host`, or `:host`)
// origin token that precedes the command. Host is always present when a
// Prefix is returned at all; Nick and User are spans into source, nil
// when absent. Invariant (spec.md §3.3): User non-nil implies Nick
// non-nil.
type Prefix struct {
	Nick *Span
	User *Span
	Host Span
}

// parsePrefix implements spec.md §4.3. *pos must point at the byte
// immediately following the tag section (including its trailing space, if
// any). If that byte is not ':', there is no prefix and *pos is left
// untouched. Otherwise the prefix token is consumed up to (and including)
// the next space and *pos is advanced past it.
//
// ok is false only for the single structural failure spec.md §4.3/§7
// names: a ':' with no terminating space before end of line. In that case
// present is false and *pos is left untouched.
func parsePrefix(src string, pos *int) (prefix Prefix, present bool, ok bool) {
	if *pos >= len(src) || src[*pos] != ':' {
		return Prefix{}, false, true
	}

	start := *pos + 1
	spaceOffset := strings.IndexByte(src[start:], ' ')
	if spaceOffset < 0 {
		return Prefix{}, false, false
	}
	tokenEnd := start + spaceOffset
	token := src[start:tokenEnd]

	prefix = splitPrefixToken(token, start)
	*pos = tokenEnd + 1
	return prefix, true, true
}

// splitPrefixToken implements the shape disambiguation in spec.md §4.3:
// search left-to-right for '!' then, after it, for '@'. A bare '@' with
// no preceding '!' yields nick@host. Neither found — or a '!' with no
// following '@', which is not representable in IRC — yields a bare host
// spanning the whole token. offset is the absolute position of token[0]
// in the original source, used to turn relative indices into spans.
func splitPrefixToken(token string, offset int) Prefix {
	bangIdx := strings.IndexByte(token, '!')

	atIdx := -1
	if bangIdx >= 0 {
		if rel := strings.IndexByte(token[bangIdx+1:], '@'); rel >= 0 {
			atIdx = bangIdx + 1 + rel
		}
	} else {
		atIdx = strings.IndexByte(token, '@')
	}

	switch {
	case bangIdx >= 0 && atIdx >= 0:
		nick := spanOf(offset, offset+bangIdx)
		user := spanOf(offset+bangIdx+1, offset+atIdx)
		return Prefix{
			Nick: &nick,
			User: &user,
			Host: spanOf(offset+atIdx+1, offset+len(token)),
		}
	case atIdx >= 0:
		nick := spanOf(offset, offset+atIdx)
		return Prefix{
			Nick: &nick,
			Host: spanOf(offset+atIdx+1, offset+len(token)),
		}
	default:
		return Prefix{Host: spanOf(offset, offset+len(token))}
	}
}
