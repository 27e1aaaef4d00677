//go:build amd64

package irc

import "golang.org/x/sys/cpu"

// This file provides the x86_64 scan path. Go has no portable compiler
// intrinsics for SSE2 the way C/Rust do, so instead of hand-written
// assembly we use the classic SWAR ("SIMD within a register") byte trick
// from bytescan.go: pack 8 bytes into a uint64, XOR against a byte
// broadcast to every lane, and use the "has a zero byte" bit trick to find
// a lane match in one branch-free step. Two words cover a 16-byte chunk,
// matching the spec's chunk size; a zero-padded tail word covers the
// remainder, same as the SSE2/NEON versions this mirrors.
func init() {
	if cpu.X86.HasSSE2 {
		findEqualsFn = sse2FindEquals
		findSemiOrSpaceFn = sse2FindSemiOrSpace
	}
}

func sse2FindEquals(s string) (int, bool) {
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

func sse2FindSemiOrSpace(s string) (Found, bool) {
	test := func(word uint64, base int) (Found, bool) {
		semiIdx, semiOK := wordHasByte(word, ';')
		spaceIdx, spaceOK := wordHasByte(word, ' ')
		switch {
		case semiOK && spaceOK:
			if semiIdx < spaceIdx {
				return Found{IsSemi: true, Index: base + semiIdx}, true
			}
			return Found{IsSemi: false, Index: base + spaceIdx}, true
		case semiOK:
			return Found{IsSemi: true, Index: base + semiIdx}, true
		case spaceOK:
			return Found{IsSemi: false, Index: base + spaceIdx}, true
		default:
			return Found{}, false
		}
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
