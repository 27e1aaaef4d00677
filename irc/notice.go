package irc

// Notice is the typed view over "NOTICE #channel :<text>", e.g. the
// "You are permanently banned" / "msg_ratelimit" family of server
// messages, distinguished by the msg-id tag.
type Notice struct {
	Channel string
	MsgID   string
	Text    string
}

func NoticeFromIrc(msg *IrcMessage) (Notice, bool) {
	if msg.Command != CommandNotice {
		return Notice{}, false
	}
	n := Notice{Text: textOrEmpty(msg)}
	if msg.Channel != nil {
		n.Channel = msg.Channel.Get(msg.Source)
	}
	n.MsgID, _ = msg.TagString(TagMsgID)
	return n, true
}
