package irc

import "testing"

func FuzzParse(f *testing.F) {
	f.Add("PING")
	f.Add(":tmi.twitch.tv RECONNECT")
	f.Add("@badge-info=;badges=bits/100;bits=1;color=#004B49;display-name=TETYYS;emotes=;" +
		"id=d7f03a35-f339-41ca-b4d4-7c0721438570;mod=0;room-id=11148817;tmi-sent-ts=1594571566672;" +
		"user-id=36175310 :tetyys!tetyys@tetyys.tmi.twitch.tv PRIVMSG #pajlada :trihard1")
	f.Add("@id=x;room-id=1;tmi-sent-ts=1;user-id=2;display-name=A :a!a@a.tmi.twitch.tv PRIVMSG #c :\x01ACTION waves\x01")
	f.Add(`@display-name=Riot\sGames :riotgames!riotgames@riotgames.tmi.twitch.tv PRIVMSG #riotgames :hi`)
	f.Add("@mod;id=1 rest")
	f.Add(":nohost")
	f.Add("")

	f.Fuzz(func(t *testing.T, line string) {
		msg, ok := Parse(line)
		if !ok {
			return
		}
		if msg.Channel != nil && (msg.Channel.Start > msg.Channel.End || int(msg.Channel.End) > len(msg.Source)) {
			t.Fatalf("channel span out of bounds for %q", line)
		}
		for _, tag := range msg.Tags {
			if tag.Value.Start > tag.Value.End || int(tag.Value.End) > len(msg.Source) {
				t.Fatalf("tag value span out of bounds for %q", line)
			}
		}
		// Typed-view construction must never panic on arbitrary input.
		PrivmsgFromIrc(&msg)
		UserNoticeFromIrc(&msg)
		ClearChatFromIrc(&msg)
		HostTargetFromIrc(&msg)
	})
}

func FuzzParseTags(f *testing.F) {
	f.Add("@a=1;b=2 rest")
	f.Add("@=v;mod=1 x")
	f.Add("@mod=;id=1 x")
	f.Add("@nokeyvaluehere rest")
	f.Add("")

	f.Fuzz(func(t *testing.T, src string) {
		pos := 0
		tags := parseTags(src, &pos, AcceptAllWhitelist())
		if pos < 0 || pos > len(src) {
			t.Fatalf("pos out of bounds: %d for %q", pos, src)
		}
		for _, tag := range tags {
			if tag.KeySpan.Start > tag.KeySpan.End || int(tag.KeySpan.End) > len(src) {
				t.Fatalf("key span out of bounds for %q", src)
			}
			if tag.Value.Start > tag.Value.End || int(tag.Value.End) > len(src) {
				t.Fatalf("value span out of bounds for %q", src)
			}
		}
	})
}
