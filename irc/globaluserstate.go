package irc

// GlobalUserState is the typed view over "GLOBALUSERSTATE", sent once
// right after successful login with the connecting user's identity and
// global badges.
type GlobalUserState struct {
	UserID      string
	DisplayName string
	Color       string
	Badges      []Badge
	EmoteSets   string
}

func GlobalUserStateFromIrc(msg *IrcMessage) (GlobalUserState, bool) {
	if msg.Command != CommandGlobalUserState {
		return GlobalUserState{}, false
	}
	g := GlobalUserState{}
	g.UserID, _ = msg.TagString(TagUserID)
	g.DisplayName, _ = msg.TagString(TagDisplayName)
	g.Color, _ = msg.TagString(TagColor)
	g.EmoteSets, _ = msg.TagString(TagEmoteSets)
	if raw, ok := msg.TagString(TagBadges); ok {
		g.Badges = parseBadges(raw)
	}
	return g, true
}
