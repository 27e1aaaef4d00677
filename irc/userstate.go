package irc

// UserState is the typed view over "USERSTATE #channel", sent whenever
// the bot's own user state in a room changes (join, mod grant, …).
type UserState struct {
	Channel      string
	Color        string
	DisplayName  string
	Badges       []Badge
	IsMod        bool
	IsSubscriber bool
	EmoteSets    string
}

func UserStateFromIrc(msg *IrcMessage) (UserState, bool) {
	if msg.Command != CommandUserState || msg.Channel == nil {
		return UserState{}, false
	}
	us := UserState{Channel: msg.Channel.Get(msg.Source)}
	us.Color, _ = msg.TagString(TagColor)
	us.DisplayName, _ = msg.TagString(TagDisplayName)
	us.EmoteSets, _ = msg.TagString(TagEmoteSets)
	if raw, ok := msg.TagString(TagBadges); ok {
		us.Badges = parseBadges(raw)
	}
	if raw, ok := msg.TagString(TagMod); ok {
		us.IsMod = raw == "1"
	}
	if raw, ok := msg.TagString(TagSubscriber); ok {
		us.IsSubscriber = raw == "1"
	}
	return us, true
}
