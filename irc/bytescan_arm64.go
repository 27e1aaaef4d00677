//go:build arm64

package irc

import "golang.org/x/sys/cpu"

// The aarch64 path. Real NEON intrinsics (vceqq_u8 + vshrn_n_u16, as in
// original_source/src/irc/simd/arm_neon.rs) are not reachable from plain Go
// without cgo or hand-written assembly; this reproduces the same
// "16-byte chunk, branch-free lane test" shape using the SWAR technique
// from bytescan.go instead, gated on the CPU actually advertising Advanced
// SIMD support so the dispatch mirrors the spec's "build-time architecture
// + feature flag" requirement even though the lane test itself runs on the
// integer pipeline rather than a NEON register.
func init() {
	if cpu.ARM64.HasASIMD {
		findEqualsFn = neonFindEquals
		findSemiOrSpaceFn = neonFindSemiOrSpace
	}
}

func neonFindEquals(s string) (int, bool) {
	i := 0
	for i+16 <= len(s) {
		if idx, ok := wordHasByte(loadWord(s[i:i+8]), '='); ok {
			return i + idx, true
		}
		if idx, ok := wordHasByte(loadWord(s[i+8:i+16]), '='); ok {
			return i + 8 + idx, true
		}
		i += 16
	}
	for ; i+8 <= len(s); i += 8 {
		if idx, ok := wordHasByte(loadWord(s[i:i+8]), '='); ok {
			return i + idx, true
		}
	}
	if i < len(s) {
		if idx, ok := wordHasByte(loadWord(s[i:]), '='); ok {
			return i + idx, true
		}
	}
	return 0, false
}

// neonFindSemiOrSpace mirrors arm_neon.rs's tie-break: compute both match
// positions within the chunk and take the smaller one, preferring Semi
// only on a strict "<" comparison — never "<=" — so a hypothetical tie
// (which cannot occur for distinct needle bytes) would resolve the same
// way the original Rust implementation's comparison does.
func neonFindSemiOrSpace(s string) (Found, bool) {
	test := func(word uint64, base int) (Found, bool) {
		semiIdx, semiOK := wordHasByte(word, ';')
		spaceIdx, spaceOK := wordHasByte(word, ' ')
		if semiOK && spaceOK {
			if semiIdx < spaceIdx {
				return Found{IsSemi: true, Index: base + semiIdx}, true
			}
			return Found{IsSemi: false, Index: base + spaceIdx}, true
		}
		if semiOK {
			return Found{IsSemi: true, Index: base + semiIdx}, true
		}
		if spaceOK {
			return Found{IsSemi: false, Index: base + spaceIdx}, true
		}
		return Found{}, false
	}

	i := 0
	for i+16 <= len(s) {
		if f, ok := test(loadWord(s[i:i+8]), i); ok {
			return f, true
		}
		if f, ok := test(loadWord(s[i+8:i+16]), i+8); ok {
			return f, true
		}
		i += 16
	}
	for ; i+8 <= len(s); i += 8 {
		if f, ok := test(loadWord(s[i:i+8]), i); ok {
			return f, true
		}
	}
	if i < len(s) {
		if f, ok := test(loadWord(s[i:]), i); ok {
			return f, true
		}
	}
	return Found{}, false
}
