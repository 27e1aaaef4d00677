package irc

import "strconv"

// RoomState is the typed view over "ROOMSTATE #channel", Twitch's room
// configuration snapshot/delta (emote-only, followers-only, slow mode,
// subs-only, r9k).
type RoomState struct {
	Channel       string
	EmoteOnly     bool
	FollowersOnly string
	R9K           bool
	SlowSeconds   int
	SubsOnly      bool
}

func RoomStateFromIrc(msg *IrcMessage) (RoomState, bool) {
	if msg.Command != CommandRoomState || msg.Channel == nil {
		return RoomState{}, false
	}
	rs := RoomState{Channel: msg.Channel.Get(msg.Source)}
	if raw, ok := msg.TagString(TagEmoteOnly); ok {
		rs.EmoteOnly = raw == "1"
	}
	rs.FollowersOnly, _ = msg.TagString(TagFollowersOnly)
	if raw, ok := msg.TagString(TagR9K); ok {
		rs.R9K = raw == "1"
	}
	if raw, ok := msg.TagString(TagSlow); ok {
		rs.SlowSeconds, _ = strconv.Atoi(raw)
	}
	if raw, ok := msg.TagString(TagSubsOnly); ok {
		rs.SubsOnly = raw == "1"
	}
	return rs, true
}
