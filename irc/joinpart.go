package irc

// Join and Part carry the channel and joining/leaving nick for
// "JOIN #channel" / "PART #channel", where the nick comes from the
// message prefix.
type Join struct {
	Channel string
	Nick    string
}

type Part struct {
	Channel string
	Nick    string
}

func JoinFromIrc(msg *IrcMessage) (Join, bool) {
	if msg.Command != CommandJoin || msg.Channel == nil {
		return Join{}, false
	}
	return Join{Channel: msg.Channel.Get(msg.Source), Nick: prefixNick(msg)}, true
}

func PartFromIrc(msg *IrcMessage) (Part, bool) {
	if msg.Command != CommandPart || msg.Channel == nil {
		return Part{}, false
	}
	return Part{Channel: msg.Channel.Get(msg.Source), Nick: prefixNick(msg)}, true
}

func prefixNick(msg *IrcMessage) string {
	if msg.HasPrefix && msg.Prefix.Nick != nil {
		return msg.Prefix.Nick.Get(msg.Source)
	}
	return ""
}
