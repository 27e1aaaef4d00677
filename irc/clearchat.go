package irc

import "strconv"

// ClearChat is the typed view over "CLEARCHAT #channel[ :<user>]", sent
// both for a full chat clear (no trailing text, no target-user tag) and
// for a single-user timeout/ban (trailing text is the target login).
type ClearChat struct {
	Channel      string
	TargetLogin  string
	TargetUserID string
	BanDuration  *int
}

func ClearChatFromIrc(msg *IrcMessage) (ClearChat, bool) {
	if msg.Command != CommandClearChat || msg.Channel == nil {
		return ClearChat{}, false
	}
	cc := ClearChat{Channel: msg.Channel.Get(msg.Source)}
	if msg.Text != nil {
		cc.TargetLogin = msg.Text.Get(msg.Source)
	}
	cc.TargetUserID, _ = msg.TagString(TagTargetUserID)
	if raw, ok := msg.TagString(TagBanDuration); ok {
		if d, err := strconv.Atoi(raw); err == nil {
			cc.BanDuration = &d
		}
	}
	return cc, true
}
