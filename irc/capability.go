package irc

import "strings"

// Capability is the typed view over "CAP <* | nick> <subcommand>
// [:params]", e.g. "CAP * ACK :twitch.tv/membership" sent after a CAP
// REQ the client makes during connection registration.
type Capability struct {
	Subcommand string
	Params     string
}

func CapabilityFromIrc(msg *IrcMessage) (Capability, bool) {
	if msg.Command != CommandCapability || msg.Params == nil {
		return Capability{}, false
	}
	params := msg.Params.Get(msg.Source)
	rest := ""
	if idx := strings.IndexByte(params, ' '); idx >= 0 {
		rest = params[idx+1:]
	}
	sub := rest
	if idx := strings.IndexByte(rest, ' '); idx >= 0 {
		sub = rest[:idx]
	}
	c := Capability{Subcommand: sub}
	if msg.Text != nil {
		c.Params = msg.Text.Get(msg.Source)
	}
	return c, true
}
