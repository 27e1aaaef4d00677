package irc

// UserNotice is the typed view over "USERNOTICE #channel[:text]",
// Twitch's catch-all for subscriptions, raids, ritual messages, and
// similar events distinguished by msg-id and the msg-param-* tags.
type UserNotice struct {
	Channel     string
	MsgID       string
	SystemMsg   string
	Login       string
	DisplayName string
	RoomID      string
	UserID      string
	Text        string
	Badges      []Badge
	Reply       *Reply
}

func UserNoticeFromIrc(msg *IrcMessage) (UserNotice, bool) {
	if msg.Command != CommandUserNotice || msg.Channel == nil {
		return UserNotice{}, false
	}

	un := UserNotice{
		Channel: msg.Channel.Get(msg.Source),
		Text:    textOrEmpty(msg),
	}
	un.MsgID, _ = msg.TagString(TagMsgID)
	un.SystemMsg, _ = msg.TagString(TagSystemMsg)
	un.Login, _ = msg.TagString(TagLogin)
	un.DisplayName, _ = msg.TagString(TagDisplayName)
	un.RoomID, _ = msg.TagString(TagRoomID)
	un.UserID, _ = msg.TagString(TagUserID)
	if raw, ok := msg.TagString(TagBadges); ok {
		un.Badges = parseBadges(raw)
	}
	un.Reply = replyFromTags(msg)
	return un, true
}
