package irc

// Reconnect is the typed view over the bare "RECONNECT" command Twitch
// sends shortly before a planned disconnect; it carries no payload, only
// the fact of the command.
type Reconnect struct{}

func ReconnectFromIrc(msg *IrcMessage) (Reconnect, bool) {
	if msg.Command != CommandReconnect {
		return Reconnect{}, false
	}
	return Reconnect{}, true
}
