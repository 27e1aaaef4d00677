// Package transport provides the thin, non-core glue a real client needs
// around the irc package: turning a byte stream into a sequence of
// parsed messages. It does not dial, join channels, retry, or
// authenticate.
package transport

import (
	"bufio"
	"io"

	"github.com/tmigo/tmi/irc"
)

// ReadMessages scans r line by line and calls yield with each
// successfully parsed irc.IrcMessage. Lines that fail to parse
// structurally (spec.md §7: unterminated prefix, empty command) are
// skipped rather than aborting the stream. yield returning false stops
// iteration early without error, mirroring bufio.Scanner's own
// early-stop convention.
func ReadMessages(r io.Reader, yield func(irc.IrcMessage) bool) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		msg, ok := irc.Parse(line)
		if !ok {
			continue
		}
		if !yield(msg) {
			break
		}
	}
	return scanner.Err()
}
