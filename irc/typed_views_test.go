package irc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPingPongFromIrc(t *testing.T) {
	msg, ok := Parse("PING :tmi.twitch.tv")
	require.True(t, ok)
	p, ok := PingFromIrc(&msg)
	require.True(t, ok)
	assert.Equal(t, "tmi.twitch.tv", p.Text)

	_, ok = PongFromIrc(&msg)
	assert.False(t, ok)
}

func TestJoinPartFromIrc(t *testing.T) {
	msg, ok := Parse(":ronni!ronni@ronni.tmi.twitch.tv JOIN #pajlada")
	require.True(t, ok)
	j, ok := JoinFromIrc(&msg)
	require.True(t, ok)
	assert.Equal(t, "pajlada", j.Channel)
	assert.Equal(t, "ronni", j.Nick)

	msg, ok = Parse(":ronni!ronni@ronni.tmi.twitch.tv PART #pajlada")
	require.True(t, ok)
	pt, ok := PartFromIrc(&msg)
	require.True(t, ok)
	assert.Equal(t, "pajlada", pt.Channel)
}

func TestWhisperFromIrc(t *testing.T) {
	msg, ok := Parse(":ronni!ronni@ronni.tmi.twitch.tv WHISPER pajlada :hey there")
	require.True(t, ok)
	w, ok := WhisperFromIrc(&msg)
	require.True(t, ok)
	assert.Equal(t, "pajlada", w.ToNick)
	assert.Equal(t, "hey there", w.Body)
	assert.Equal(t, "ronni", w.FromLogin)
}

func TestNoticeFromIrc(t *testing.T) {
	msg, ok := Parse("@msg-id=msg_banned :tmi.twitch.tv NOTICE #pajlada :You are banned")
	require.True(t, ok)
	n, ok := NoticeFromIrc(&msg)
	require.True(t, ok)
	assert.Equal(t, "pajlada", n.Channel)
	assert.Equal(t, "msg_banned", n.MsgID)
	assert.Equal(t, "You are banned", n.Text)
}

func TestUserNoticeFromIrc(t *testing.T) {
	line := "@msg-id=raid;system-msg=raid;login=ronni;display-name=Ronni;room-id=1;user-id=2 " +
		":tmi.twitch.tv USERNOTICE #pajlada :raiding!"
	msg, ok := Parse(line)
	require.True(t, ok)
	un, ok := UserNoticeFromIrc(&msg)
	require.True(t, ok)
	assert.Equal(t, "pajlada", un.Channel)
	assert.Equal(t, "raid", un.MsgID)
	assert.Equal(t, "raiding!", un.Text)
}

func TestUserStateFromIrc(t *testing.T) {
	msg, ok := Parse("@color=#FF0000;mod=1;subscriber=0 :tmi.twitch.tv USERSTATE #pajlada")
	require.True(t, ok)
	us, ok := UserStateFromIrc(&msg)
	require.True(t, ok)
	assert.Equal(t, "pajlada", us.Channel)
	assert.True(t, us.IsMod)
	assert.False(t, us.IsSubscriber)
}

func TestGlobalUserStateFromIrc(t *testing.T) {
	msg, ok := Parse("@user-id=1;display-name=Ronni :tmi.twitch.tv GLOBALUSERSTATE")
	require.True(t, ok)
	g, ok := GlobalUserStateFromIrc(&msg)
	require.True(t, ok)
	assert.Equal(t, "Ronni", g.DisplayName)
}

func TestRoomStateFromIrc(t *testing.T) {
	msg, ok := Parse("@emote-only=1;slow=5;subs-only=0 :tmi.twitch.tv ROOMSTATE #pajlada")
	require.True(t, ok)
	rs, ok := RoomStateFromIrc(&msg)
	require.True(t, ok)
	assert.True(t, rs.EmoteOnly)
	assert.Equal(t, 5, rs.SlowSeconds)
	assert.False(t, rs.SubsOnly)
}

func TestClearChatFromIrc(t *testing.T) {
	msg, ok := Parse("@ban-duration=600;target-user-id=1 :tmi.twitch.tv CLEARCHAT #pajlada :ronni")
	require.True(t, ok)
	cc, ok := ClearChatFromIrc(&msg)
	require.True(t, ok)
	assert.Equal(t, "ronni", cc.TargetLogin)
	require.NotNil(t, cc.BanDuration)
	assert.Equal(t, 600, *cc.BanDuration)
}

func TestClearMsgFromIrc(t *testing.T) {
	msg, ok := Parse("@login=ronni;target-msg-id=abc :tmi.twitch.tv CLEARMSG #pajlada :hello")
	require.True(t, ok)
	cm, ok := ClearMsgFromIrc(&msg)
	require.True(t, ok)
	assert.Equal(t, "ronni", cm.Login)
	assert.Equal(t, "abc", cm.TargetMsgID)
	assert.Equal(t, "hello", cm.Text)
}

func TestHostTargetFromIrc(t *testing.T) {
	msg, ok := Parse(":tmi.twitch.tv HOSTTARGET #pajlada :ronni 10")
	require.True(t, ok)
	ht, ok := HostTargetFromIrc(&msg)
	require.True(t, ok)
	assert.Equal(t, "pajlada", ht.HostingChannel)
	assert.Equal(t, "ronni", ht.TargetChannel)
	assert.False(t, ht.Stopped)
	require.NotNil(t, ht.ViewerCount)
	assert.Equal(t, 10, *ht.ViewerCount)

	msg, ok = Parse(":tmi.twitch.tv HOSTTARGET #pajlada :- 0")
	require.True(t, ok)
	ht, ok = HostTargetFromIrc(&msg)
	require.True(t, ok)
	assert.True(t, ht.Stopped)
}

func TestReconnectFromIrc(t *testing.T) {
	msg, ok := Parse(":tmi.twitch.tv RECONNECT")
	require.True(t, ok)
	_, ok = ReconnectFromIrc(&msg)
	assert.True(t, ok)
}

func TestCapabilityFromIrc(t *testing.T) {
	msg, ok := Parse("CAP * ACK :twitch.tv/membership")
	require.True(t, ok)
	c, ok := CapabilityFromIrc(&msg)
	require.True(t, ok)
	assert.Equal(t, "ACK", c.Subcommand)
	assert.Equal(t, "twitch.tv/membership", c.Params)
}
