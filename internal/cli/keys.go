package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// Command is a navigation request decoded from user input.
type Command int

const (
	CmdNone Command = iota
	CmdNext
	CmdPrevious
	CmdFirst
	CmdLast
	CmdSeek
	CmdRedraw
	CmdQuit
)

func (c Command) String() string {
	switch c {
	case CmdNext:
		return "next"
	case CmdPrevious:
		return "previous"
	case CmdFirst:
		return "first"
	case CmdLast:
		return "last"
	case CmdSeek:
		return "seek"
	case CmdRedraw:
		return "redraw"
	case CmdQuit:
		return "quit"
	}
	return "none"
}

// Escape sequences sent by terminals in raw mode.
var escapes = map[string]Command{
	"\x1b[C":  CmdNext,
	"\x1b[B":  CmdNext,
	"\x1b[D":  CmdPrevious,
	"\x1b[A":  CmdPrevious,
	"\x1b[H":  CmdFirst,
	"\x1b[1~": CmdFirst,
	"\x1b[F":  CmdLast,
	"\x1b[4~": CmdLast,
	"\x1bOC":  CmdNext,
	"\x1bOD":  CmdPrevious,
	"\x1bOH":  CmdFirst,
	"\x1bOF":  CmdLast,
}

// DecodeKeys turns a chunk of raw terminal input into commands. Unknown bytes are skipped.
func DecodeKeys(buf []byte) []Command {
	var out []Command
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b == 0x1b {
			matched := false
			for seq, cmd := range escapes {
				if strings.HasPrefix(string(buf[i:]), seq) {
					out = append(out, cmd)
					i += len(seq) - 1
					matched = true
					break
				}
			}
			if !matched && i == len(buf)-1 {
				// A lone Esc quits.
				out = append(out, CmdQuit)
			}
			continue
		}
		switch b {
		case 'n', 'l', ' ', '\r', '\n':
			out = append(out, CmdNext)
		case 'p', 'h', 0x7f:
			out = append(out, CmdPrevious)
		case 'g':
			out = append(out, CmdFirst)
		case 'G':
			out = append(out, CmdLast)
		case 'r', 0x0c:
			out = append(out, CmdRedraw)
		case 'q', 0x03, 0x04:
			out = append(out, CmdQuit)
		}
	}
	return out
}

// ParseLine decodes one line of headless input ("next", "p", "seek 3", "quit").
// An empty line redraws.
func ParseLine(line string) (Command, int, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return CmdRedraw, 0, nil
	}

	switch fields[0] {
	case "n", "next":
		return CmdNext, 0, nil
	case "p", "prev", "previous":
		return CmdPrevious, 0, nil
	case "first", "home":
		return CmdFirst, 0, nil
	case "last", "end":
		return CmdLast, 0, nil
	case "r", "redraw", "render":
		return CmdRedraw, 0, nil
	case "q", "quit", "exit":
		return CmdQuit, 0, nil
	case "g", "seek", "goto":
		if len(fields) < 2 {
			return CmdNone, 0, fmt.Errorf("%s needs a state number", fields[0])
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return CmdNone, 0, fmt.Errorf("invalid state number %q", fields[1])
		}
		// States are numbered from 1 on screen.
		return CmdSeek, n - 1, nil
	}
	return CmdNone, 0, fmt.Errorf("unknown command %q", fields[0])
}
