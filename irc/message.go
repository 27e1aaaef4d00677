package irc

import "strings"

// IrcMessage is the borrowed, zero-copy view described in spec.md §3: every
// field is a Span into Source (or a value derived from one), so a
// successfully parsed message never outlives the string it was parsed
// from and never copies a substring of it. Besides the tag slice, each
// optional span that is present (Channel, Params, Text, and Prefix.Nick /
// Prefix.User) is a separate small heap allocation behind its pointer.
type IrcMessage struct {
	Source    string
	Tags      []RawTag
	Prefix    Prefix
	HasPrefix bool
	Command   Command
	// CommandToken is only meaningful when Command == CommandOther; it
	// holds the raw, unrecognized verb or numeric.
	CommandToken Span
	Channel      *Span
	Params       *Span
	Text         *Span
}

// Tag looks up the first tag matching key, in insertion order.
func (m *IrcMessage) Tag(key TagKey) (Span, bool) {
	for _, t := range m.Tags {
		if t.Key == key {
			return t.Value, true
		}
	}
	return Span{}, false
}

// TagString is a convenience wrapper around Tag that resolves the span.
func (m *IrcMessage) TagString(key TagKey) (string, bool) {
	span, ok := m.Tag(key)
	if !ok {
		return "", false
	}
	return span.Get(m.Source), true
}

// Parse implements IrcMessage::parse from spec.md §6: parses with a
// whitelist that accepts every tag.
func Parse(line string) (IrcMessage, bool) {
	return ParseWithWhitelist(line, AcceptAllWhitelist())
}

// ParseWithWhitelist implements IrcMessage::parse_with_whitelist. Returns
// ok == false only for the two structural failures named in spec.md §7:
// an empty command token, or an unterminated prefix.
func ParseWithWhitelist(line string, wl Whitelist) (IrcMessage, bool) {
	src := trimLineTerminator(line)

	pos := 0
	tags := parseTags(src, &pos, wl)

	prefix, hasPrefix, ok := parsePrefix(src, &pos)
	if !ok {
		return IrcMessage{}, false
	}

	command, token, ok := parseCommand(src, &pos)
	if !ok {
		return IrcMessage{}, false
	}

	msg := IrcMessage{
		Source:       src,
		Tags:         tags,
		Prefix:       prefix,
		HasPrefix:    hasPrefix,
		Command:      command,
		CommandToken: token,
	}

	parseChannelAndParams(src, pos, command, &msg)
	return msg, true
}

// trimLineTerminator strips a trailing "\r\n", "\r", or "\n" per spec.md
// §3 invariant 5.
func trimLineTerminator(line string) string {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line
}

// parseChannelAndParams implements spec.md §4.5: if the command admits a
// channel and the next token begins with '#', record it (without the
// '#') and advance; the remainder becomes params, and anything after
// " :" within it becomes text.
func parseChannelAndParams(src string, pos int, command Command, msg *IrcMessage) {
	if pos >= len(src) {
		return
	}

	if command.admitsChannel() && pos < len(src) && src[pos] == '#' {
		hashEnd := pos + 1
		end := hashEnd
		for end < len(src) && src[end] != ' ' {
			end++
		}
		channel := spanOf(hashEnd, end)
		msg.Channel = &channel
		pos = end
		if pos < len(src) && src[pos] == ' ' {
			pos++
		}
	}

	if pos >= len(src) {
		return
	}

	params := spanOf(pos, len(src))
	msg.Params = &params

	if src[pos] == ':' {
		// The leading ':' of trailing starts params directly, e.g.
		// "PRIVMSG #c :hi" once channel+space are consumed — the whole
		// remainder is text, even if it contains " :" itself (smileys
		// like ":) :)" must not truncate it).
		text := spanOf(pos+1, len(src))
		msg.Text = &text
	} else if idx := strings.Index(src[pos:], " :"); idx >= 0 {
		textStart := pos + idx + 2
		text := spanOf(textStart, len(src))
		msg.Text = &text
	}
}
