//go:build !amd64 && !arm64

package irc

// On architectures other than amd64/arm64 the scalar fallback in
// bytescan.go is the only implementation — findEqualsFn/findSemiOrSpaceFn
// keep their initial (scalar) assignment. This file exists so the
// per-architecture dispatch story is documented even where there is
// nothing to override.
