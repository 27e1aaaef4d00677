package irc

import (
	"strconv"
	"strings"
	"time"
)

const (
	actionPrefix = "\x01ACTION "
	actionSuffix = "\x01"
)

// Reply carries the reply-parent-* tags of a PRIVMSG that replies to
// another message, per spec.md §4.7.
type Reply struct {
	ParentMsgID           string
	ParentUserID          string
	ParentUserLogin       string
	ParentDisplayName     string
	ParentMsgBody         string
	ThreadParentMsgID     string
	ThreadParentUserLogin string
}

// Privmsg is the typed view over a Command == CommandPrivmsg IrcMessage,
// built per spec.md §4.7.
type Privmsg struct {
	Channel     string
	Text        string
	IsAction    bool
	Badges      []Badge
	BadgeInfo   []Badge
	Bits        *uint64
	Color       string
	DisplayName string
	ID          string
	IsMod       bool
	RoomID      string
	TmiSentTS   time.Time
	UserID      string
	Login       string
	Reply       *Reply
}

// PrivmsgFromIrc implements Privmsg::from_irc: Some(view) iff command
// matches and every required tag is present and parses. Does not re-scan
// the line — every field is read from msg's already-resolved tags.
func PrivmsgFromIrc(msg *IrcMessage) (Privmsg, bool) {
	if msg.Command != CommandPrivmsg || msg.Channel == nil {
		return Privmsg{}, false
	}

	id, ok := msg.TagString(TagID)
	if !ok {
		return Privmsg{}, false
	}
	roomID, ok := msg.TagString(TagRoomID)
	if !ok {
		return Privmsg{}, false
	}
	userID, ok := msg.TagString(TagUserID)
	if !ok {
		return Privmsg{}, false
	}
	tsRaw, ok := msg.TagString(TagTmiSentTs)
	if !ok {
		return Privmsg{}, false
	}
	tsMillis, err := strconv.ParseInt(tsRaw, 10, 64)
	if err != nil {
		return Privmsg{}, false
	}

	text := ""
	if msg.Text != nil {
		text = msg.Text.Get(msg.Source)
	}
	isAction := false
	if strings.HasPrefix(text, actionPrefix) && strings.HasSuffix(text, actionSuffix) {
		isAction = true
		text = strings.TrimSuffix(strings.TrimPrefix(text, actionPrefix), actionSuffix)
	}

	view := Privmsg{
		Channel:   msg.Channel.Get(msg.Source),
		Text:      text,
		IsAction:  isAction,
		ID:        id,
		RoomID:    roomID,
		UserID:    userID,
		TmiSentTS: time.UnixMilli(tsMillis).UTC(),
	}

	if raw, ok := msg.TagString(TagBadges); ok {
		view.Badges = parseBadges(raw)
	}
	if raw, ok := msg.TagString(TagBadgeInfo); ok {
		view.BadgeInfo = parseBadges(raw)
	}
	if raw, ok := msg.TagString(TagBits); ok && raw != "" {
		if bits, err := strconv.ParseUint(raw, 10, 64); err == nil {
			view.Bits = &bits
		}
	}
	view.Color, _ = msg.TagString(TagColor)
	view.DisplayName, _ = msg.TagString(TagDisplayName)
	view.Login, _ = msg.TagString(TagLogin)
	if raw, ok := msg.TagString(TagMod); ok {
		view.IsMod = raw == "1"
	}
	if msg.HasPrefix && msg.Prefix.Nick != nil && view.Login == "" {
		view.Login = msg.Prefix.Nick.Get(msg.Source)
	}

	view.Reply = replyFromTags(msg)

	return view, true
}

func replyFromTags(msg *IrcMessage) *Reply {
	parentMsgID, ok := msg.TagString(TagReplyParentMsgID)
	if !ok {
		return nil
	}
	r := &Reply{ParentMsgID: parentMsgID}
	r.ParentUserID, _ = msg.TagString(TagReplyParentUserID)
	r.ParentUserLogin, _ = msg.TagString(TagReplyParentUserLogin)
	r.ParentDisplayName, _ = msg.TagString(TagReplyParentDisplayName)
	r.ParentMsgBody, _ = msg.TagString(TagReplyParentMsgBody)
	r.ThreadParentMsgID, _ = msg.TagString(TagReplyThreadParentMsgID)
	r.ThreadParentUserLogin, _ = msg.TagString(TagReplyThreadParentUserLogin)
	return r
}
