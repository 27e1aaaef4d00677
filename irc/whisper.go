package irc

import "strings"

// Whisper is the typed view over "WHISPER <to_nick> :<body>", which
// unlike the channel commands carries its target as a plain middle
// parameter rather than a '#channel'.
type Whisper struct {
	FromLogin   string
	DisplayName string
	ToNick      string
	Body        string
	MessageID   string
}

func WhisperFromIrc(msg *IrcMessage) (Whisper, bool) {
	if msg.Command != CommandWhisper || msg.Params == nil {
		return Whisper{}, false
	}

	params := msg.Params.Get(msg.Source)
	toNick := params
	if idx := strings.IndexByte(params, ' '); idx >= 0 {
		toNick = params[:idx]
	}

	w := Whisper{
		ToNick:    toNick,
		FromLogin: prefixNick(msg),
	}
	if msg.Text != nil {
		w.Body = msg.Text.Get(msg.Source)
	}
	w.DisplayName, _ = msg.TagString(TagDisplayName)
	w.MessageID, _ = msg.TagString(TagMsgID)
	return w, true
}
