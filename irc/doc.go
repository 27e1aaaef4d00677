// Package irc parses the IRCv3-with-tags wire format Twitch chat uses:
// `@tags :prefix COMMAND params :trailing`. Parsing is zero-copy — every
// field of an IrcMessage is a Span into the source line rather than an
// owned copy — and the tag scanner uses architecture-dispatched,
// word-parallel byte matching (see bytescan.go) to find '=', ';', and
// ' ' delimiters.
//
// Typed views (Privmsg, UserNotice, RoomState, …) are pure projections
// over an already-parsed IrcMessage: constructing one never re-scans the
// line.
package irc
