package irc

// ClearMsg is the typed view over "CLEARMSG #channel :<deleted text>",
// sent when a single message is deleted rather than a whole user cleared.
type ClearMsg struct {
	Channel     string
	Login       string
	TargetMsgID string
	Text        string
}

func ClearMsgFromIrc(msg *IrcMessage) (ClearMsg, bool) {
	if msg.Command != CommandClearMsg || msg.Channel == nil {
		return ClearMsg{}, false
	}
	cm := ClearMsg{Channel: msg.Channel.Get(msg.Source), Text: textOrEmpty(msg)}
	cm.Login, _ = msg.TagString(TagLogin)
	cm.TargetMsgID, _ = msg.TagString(TagTargetMsgID)
	return cm, true
}
