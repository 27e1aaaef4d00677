package irc

// Ping and Pong carry the optional trailing token IRC servers round-trip
// for keepalive: "PING :tmi.twitch.tv" / "PONG :tmi.twitch.tv".
type Ping struct {
	Text string
}

type Pong struct {
	Text string
}

func PingFromIrc(msg *IrcMessage) (Ping, bool) {
	if msg.Command != CommandPing {
		return Ping{}, false
	}
	return Ping{Text: textOrEmpty(msg)}, true
}

func PongFromIrc(msg *IrcMessage) (Pong, bool) {
	if msg.Command != CommandPong {
		return Pong{}, false
	}
	return Pong{Text: textOrEmpty(msg)}, true
}

func textOrEmpty(msg *IrcMessage) string {
	if msg.Text == nil {
		return ""
	}
	return msg.Text.Get(msg.Source)
}
