package irc

import "strings"

// Command is the closed enumeration from spec.md §6, plus Other for any
// verb or numeric the table doesn't recognize. Numeric reply codes are
// matched case-insensitively (they're digits, so case never matters in
// practice); text verbs are matched upper-cased for robustness per
// spec.md §4.4.
type Command int

const (
	CommandOther Command = iota
	CommandPing
	CommandPong
	CommandPass
	CommandNick
	CommandJoin
	CommandPart
	CommandPrivmsg
	CommandWhisper
	CommandClearChat
	CommandClearMsg
	CommandGlobalUserState
	CommandHostTarget
	CommandNotice
	CommandReconnect
	CommandRoomState
	CommandUserNotice
	CommandUserState
	CommandCapability
	CommandRplWelcome
	CommandRplYourHost
	CommandRplCreated
	CommandRplMyInfo
	CommandRplNamReply
	CommandRplEndOfNames
)

var commandByVerb = map[string]Command{
	"PING":            CommandPing,
	"PONG":            CommandPong,
	"PASS":            CommandPass,
	"NICK":            CommandNick,
	"JOIN":            CommandJoin,
	"PART":            CommandPart,
	"PRIVMSG":         CommandPrivmsg,
	"WHISPER":         CommandWhisper,
	"CLEARCHAT":       CommandClearChat,
	"CLEARMSG":        CommandClearMsg,
	"GLOBALUSERSTATE": CommandGlobalUserState,
	"HOSTTARGET":      CommandHostTarget,
	"NOTICE":          CommandNotice,
	"RECONNECT":       CommandReconnect,
	"ROOMSTATE":       CommandRoomState,
	"USERNOTICE":      CommandUserNotice,
	"USERSTATE":       CommandUserState,
	"CAP":             CommandCapability,
	"001":             CommandRplWelcome,
	"002":             CommandRplYourHost,
	"003":             CommandRplCreated,
	"004":             CommandRplMyInfo,
	"353":             CommandRplNamReply,
	"366":             CommandRplEndOfNames,
}

var commandVerbs = map[Command]string{
	CommandPing:            "PING",
	CommandPong:            "PONG",
	CommandPass:            "PASS",
	CommandNick:            "NICK",
	CommandJoin:            "JOIN",
	CommandPart:            "PART",
	CommandPrivmsg:         "PRIVMSG",
	CommandWhisper:         "WHISPER",
	CommandClearChat:       "CLEARCHAT",
	CommandClearMsg:        "CLEARMSG",
	CommandGlobalUserState: "GLOBALUSERSTATE",
	CommandHostTarget:      "HOSTTARGET",
	CommandNotice:          "NOTICE",
	CommandReconnect:       "RECONNECT",
	CommandRoomState:       "ROOMSTATE",
	CommandUserNotice:      "USERNOTICE",
	CommandUserState:       "USERSTATE",
	CommandCapability:      "CAP",
	CommandRplWelcome:      "001",
	CommandRplYourHost:     "002",
	CommandRplCreated:      "003",
	CommandRplMyInfo:       "004",
	CommandRplNamReply:     "353",
	CommandRplEndOfNames:   "366",
}

// String returns the wire verb, or "" for Other (whose text lives in the
// CommandToken span instead).
func (c Command) String() string {
	return commandVerbs[c]
}

// admitsChannel reports whether spec.md §4.5 allows this command's next
// token (if it begins with '#') to be consumed as the channel span.
// Commands that target a user rather than a channel, and connection-
// registration/control commands, do not.
func (c Command) admitsChannel() bool {
	switch c {
	case CommandJoin, CommandPart, CommandPrivmsg, CommandClearChat,
		CommandClearMsg, CommandRoomState, CommandUserNotice,
		CommandUserState, CommandNotice, CommandHostTarget,
		CommandRplNamReply, CommandRplEndOfNames:
		return true
	default:
		return false
	}
}

// parseCommand implements spec.md §4.4. *pos must point at the first byte
// of the command token (i.e. past any prefix and its trailing space). ok
// is false only for an empty command token, which spec.md §7 treats as a
// parse failure.
func parseCommand(src string, pos *int) (command Command, token Span, ok bool) {
	start := *pos
	end := start
	for end < len(src) && src[end] != ' ' {
		end++
	}
	if end == start {
		return CommandOther, Span{}, false
	}

	token = spanOf(start, end)
	verb := strings.ToUpper(token.Get(src))
	if c, known := commandByVerb[verb]; known {
		command = c
	} else {
		command = CommandOther
	}

	*pos = end
	if *pos < len(src) && src[*pos] == ' ' {
		*pos++
	}
	return command, token, true
}
