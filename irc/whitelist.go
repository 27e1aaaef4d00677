package irc

// defaultTagCapacityHint is the capacity hint irc.Parse uses when the
// caller does not supply a Whitelist. Twitch PRIVMSG/USERNOTICE lines
// commonly carry 15-20 tags; 16 avoids a reallocation for the common case
// without over-committing for a bare PING.
const defaultTagCapacityHint = 16

// RawTag is one key/value pair from the tag section of a line, with both
// the resolved TagKey and the original key Span (so an Unknown key's wire
// spelling is never lost) plus the value Span.
type RawTag struct {
	Key     TagKey
	KeySpan Span
	Value   Span
}

// TagInserter decides whether a (key, value) pair the raw tag scanner just
// found should be kept. It receives the resolved key (TagUnknown for keys
// Twitch doesn't document) and appends to tags if it wants to keep the
// pair. This is the Go rendition of the teacher's functional-options
// pattern applied to spec.md §3's Whitelist<IC, F>: instead of a
// const-generic capacity + monomorphized function, a plain func value is
// held on the Whitelist struct so the hot insert loop in parseTags stays a
// single indirect call, not an interface dispatch through a vtable.
type TagInserter func(src string, tags *[]RawTag, key TagKey, keySpan, value Span)

// Whitelist controls which tags the raw tag parser keeps and how big a
// tag slice it pre-allocates.
type Whitelist struct {
	capacityHint int
	insert       TagInserter
}

// NewWhitelist builds a Whitelist from an explicit capacity hint and
// inserter. Most callers want AcceptAllWhitelist or a NewKeySetWhitelist
// instead; this is exposed for callers that want a custom insertion
// policy (e.g. rejecting tags whose value exceeds some length).
func NewWhitelist(capacityHint int, insert TagInserter) Whitelist {
	return Whitelist{capacityHint: capacityHint, insert: insert}
}

// AcceptAllWhitelist keeps every tag the scanner finds. This is what
// irc.Parse uses when no whitelist is supplied.
func AcceptAllWhitelist() Whitelist {
	return NewWhitelist(defaultTagCapacityHint, acceptAllInsert)
}

func acceptAllInsert(src string, tags *[]RawTag, key TagKey, keySpan, value Span) {
	*tags = append(*tags, RawTag{Key: key, KeySpan: keySpan, Value: value})
}

// NewKeySetWhitelist builds a Whitelist that only keeps tags whose
// resolved key is a member of keys. This is the Go equivalent of
// spec.md §6's `whitelist!(K1, K2, …)` compile-time constructor: keys are
// fixed at construction time, and the hot loop remains a single map
// lookup per tag, not a scan over a caller-provided predicate.
func NewKeySetWhitelist(keys ...TagKey) Whitelist {
	set := make(map[TagKey]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	capacityHint := len(keys)
	if capacityHint == 0 {
		capacityHint = 1
	}
	return NewWhitelist(capacityHint, func(src string, tags *[]RawTag, key TagKey, keySpan, value Span) {
		if _, ok := set[key]; ok {
			*tags = append(*tags, RawTag{Key: key, KeySpan: keySpan, Value: value})
		}
	})
}

func (w Whitelist) maybeInsert(src string, tags *[]RawTag, key TagKey, keySpan, value Span) {
	w.insert(src, tags, key, keySpan, value)
}
