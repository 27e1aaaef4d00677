package irc

// parseTags implements spec.md §4.2: scan the `@k=v;k=v ` tag section
// starting at *pos, inserting whitelist-accepted pairs into the returned
// slice and leaving *pos at the first byte after the section (or
// unchanged if there is no leading '@').
//
// Grounded on original_source/src/irc/simd/arm_neon.rs's parse_tags, which
// is itself identical in shape to the x86_sse version per that file's own
// comment — the three implementations differ only in how find_equals /
// find_semi_or_space are computed, never in this loop.
func parseTags(src string, pos *int, wl Whitelist) []RawTag {
	if *pos >= len(src) || src[*pos] != '@' {
		return nil
	}

	tags := make([]RawTag, 0, wl.capacityHint)

	keyStart := *pos + 1
	for keyStart < len(src) {
		eqOffset, ok := FindEquals(src[keyStart:])
		if !ok {
			// No more '=' — whatever remains is not tag syntax; stop
			// without consuming it (spec.md §4.2 edge case: "missing '='
			// before next ';' ... exits via rule 3a without consuming").
			break
		}
		keyEnd := keyStart + eqOffset
		valueStart := keyEnd + 1

		key := ResolveTagKey(src[keyStart:keyEnd])
		keySpan := spanOf(keyStart, keyEnd)

		found, ok := FindSemiOrSpace(src[valueStart:])
		if !ok {
			// No terminating space: value runs to end of source, tags
			// extend to EOL (spec.md §4.2 edge case).
			valueSpan := spanOf(valueStart, len(src))
			wl.maybeInsert(src, &tags, key, keySpan, valueSpan)
			keyStart = len(src)
			break
		}

		valueEnd := valueStart + found.Index
		valueSpan := spanOf(valueStart, valueEnd)
		wl.maybeInsert(src, &tags, key, keySpan, valueSpan)

		if found.IsSemi {
			keyStart = valueEnd + 1
			continue
		}
		// Space: tag section ends here, advance past it.
		keyStart = valueEnd + 1
		break
	}

	*pos = keyStart
	return tags
}
