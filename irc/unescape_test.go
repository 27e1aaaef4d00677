package irc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnescapedNoBackslashIsBorrowed(t *testing.T) {
	u := Unescaped{Value: "plain text"}
	assert.Equal(t, "plain text", u.Get())
}

func TestUnescapeMapping(t *testing.T) {
	cases := []struct{ in, want string }{
		{`hello\sworld`, "hello world"},
		{`a\:b`, "a;b"},
		{`a\\b`, `a\b`},
		{`a\rb`, "a\rb"},
		{`a\nb`, "a\nb"},
		{`a\xb`, "axb"},
		{`trailing\`, "trailing"},
		{``, ""},
	}
	for _, c := range cases {
		u := Unescaped{Value: c.in}
		assert.Equal(t, c.want, u.Get(), c.in)
	}
}
