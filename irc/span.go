package irc

// Span is a half-open byte range [Start, End) into a source string.
//
// The parser never allocates a substring for a field it can describe by
// span; callers resolve a Span against the original line on demand via
// Get. A Span is only meaningful relative to the exact string it was
// produced from.
type Span struct {
	Start uint32
	End   uint32
}

// spanOf builds a Span from a pair of int offsets.
func spanOf(start, end int) Span {
	return Span{Start: uint32(start), End: uint32(end)}
}

// Get resolves the span against src, returning the substring it describes.
// It panics if the span does not fall within src, which would indicate a
// parser bug rather than a caller error.
func (s Span) Get(src string) string {
	return src[s.Start:s.End]
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	return int(s.End - s.Start)
}

// Empty reports whether the span covers zero bytes.
func (s Span) Empty() bool {
	return s.Start == s.End
}
