package irc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommandKnownVerb(t *testing.T) {
	src := "PRIVMSG #pajlada :hello"
	pos := 0
	cmd, token, ok := parseCommand(src, &pos)
	require.True(t, ok)
	assert.Equal(t, CommandPrivmsg, cmd)
	assert.Equal(t, "PRIVMSG", token.Get(src))
	assert.Equal(t, "#pajlada :hello", src[pos:])
}

func TestParseCommandNumeric(t *testing.T) {
	src := "353 tetyys = #pajlada :tetyys"
	pos := 0
	cmd, _, ok := parseCommand(src, &pos)
	require.True(t, ok)
	assert.Equal(t, CommandRplNamReply, cmd)
}

func TestParseCommandUnknownIsOther(t *testing.T) {
	src := "XFOO bar"
	pos := 0
	cmd, token, ok := parseCommand(src, &pos)
	require.True(t, ok)
	assert.Equal(t, CommandOther, cmd)
	assert.Equal(t, "XFOO", token.Get(src))
}

func TestParseCommandEOLNoParams(t *testing.T) {
	src := "PING"
	pos := 0
	cmd, _, ok := parseCommand(src, &pos)
	require.True(t, ok)
	assert.Equal(t, CommandPing, cmd)
	assert.Equal(t, len(src), pos)
}

func TestParseCommandEmptyIsError(t *testing.T) {
	src := " trailing"
	pos := 0
	_, _, ok := parseCommand(src, &pos)
	assert.False(t, ok)
}

func TestCommandAdmitsChannel(t *testing.T) {
	assert.True(t, CommandPrivmsg.admitsChannel())
	assert.True(t, CommandJoin.admitsChannel())
	assert.False(t, CommandPing.admitsChannel())
	assert.False(t, CommandWhisper.admitsChannel())
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "PRIVMSG", CommandPrivmsg.String())
	assert.Equal(t, "353", CommandRplNamReply.String())
	assert.Equal(t, "", CommandOther.String())
}
