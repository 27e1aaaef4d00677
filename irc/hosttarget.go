package irc

import (
	"strconv"
	"strings"
)

// HostTarget is the typed view over "HOSTTARGET #hosting_channel
// :<target_channel|-> <viewer_count>", sent when a channel starts or
// stops hosting another. A target of "-" means hosting stopped.
type HostTarget struct {
	HostingChannel string
	TargetChannel  string
	Stopped        bool
	ViewerCount    *int
}

func HostTargetFromIrc(msg *IrcMessage) (HostTarget, bool) {
	if msg.Command != CommandHostTarget || msg.Channel == nil || msg.Text == nil {
		return HostTarget{}, false
	}

	text := msg.Text.Get(msg.Source)
	target := text
	countRaw := ""
	if idx := strings.IndexByte(text, ' '); idx >= 0 {
		target = text[:idx]
		countRaw = text[idx+1:]
	}

	ht := HostTarget{HostingChannel: msg.Channel.Get(msg.Source)}
	if target == "-" {
		ht.Stopped = true
	} else {
		ht.TargetChannel = target
	}
	if countRaw != "" {
		if n, err := strconv.Atoi(countRaw); err == nil {
			ht.ViewerCount = &n
		}
	}
	return ht, true
}
