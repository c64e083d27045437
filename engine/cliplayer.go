package engine

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/minaorangina/cardtable/protocol"
	"github.com/minaorangina/cardtable/solitaire"
)

var (
	ErrEmptyCommand = errors.New("empty command")
	ErrBadCommand   = errors.New("could not understand command")
)

const helpText = `Commands:
  p N        play card N from your hand
  d          draw a card (solitaire: turn the stock)
  s PILE [N] select card N of PILE (solitaire), e.g. "s t3 2" or "s w"
  m PILE     move the selection onto PILE, e.g. "m f1" or "m t4"
  c          clear the selection
  q          quit
Piles: t1-t7 tableau, f1-f4 foundations, w waste
`

// ParseCommand turns a line typed by a player into an inbound message.
// Card and pile numbers are typed from 1.
func ParseCommand(line string) (protocol.InboundMessage, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return protocol.InboundMessage{}, ErrEmptyCommand
	}

	args := fields[1:]
	switch fields[0] {
	case "p", "play":
		if len(args) != 1 {
			return badCommand(line)
		}
		n, err := position(args[0])
		if err != nil {
			return badCommand(line)
		}
		return protocol.InboundMessage{Command: protocol.Play, Card: n}, nil

	case "d", "draw":
		return protocol.InboundMessage{Command: protocol.Draw}, nil

	case "s", "select":
		if len(args) < 1 || len(args) > 2 {
			return badCommand(line)
		}
		ref, err := ParsePile(args[0])
		if err != nil {
			return badCommand(line)
		}
		msg := protocol.InboundMessage{Command: protocol.Select, Pile: ref}
		if len(args) == 2 {
			if msg.Card, err = position(args[1]); err != nil {
				return badCommand(line)
			}
		}
		return msg, nil

	case "m", "move":
		if len(args) != 1 {
			return badCommand(line)
		}
		ref, err := ParsePile(args[0])
		if err != nil {
			return badCommand(line)
		}
		return protocol.InboundMessage{Command: protocol.Move, Pile: ref}, nil

	case "c", "clear":
		return protocol.InboundMessage{Command: protocol.Clear}, nil

	case "q", "quit", "exit":
		return protocol.InboundMessage{Command: protocol.Quit}, nil
	}

	return badCommand(line)
}

// ParsePile reads a pile name such as "t3", "f1", "w" or "s".
func ParsePile(s string) (solitaire.PileRef, error) {
	switch s {
	case "w", "waste":
		return solitaire.WastePile, nil
	case "s", "stock":
		return solitaire.StockPile, nil
	}

	if len(s) < 2 {
		return solitaire.PileRef{}, solitaire.ErrInvalidPile
	}
	n, err := position(s[1:])
	if err != nil {
		return solitaire.PileRef{}, solitaire.ErrInvalidPile
	}

	switch s[0] {
	case 't':
		if n < solitaire.NumTableau {
			return solitaire.TableauPile(n), nil
		}
	case 'f':
		if n < solitaire.NumFoundation {
			return solitaire.FoundationPile(n), nil
		}
	}
	return solitaire.PileRef{}, solitaire.ErrInvalidPile
}

func position(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("position %d out of range", n)
	}
	return n - 1, nil
}

func badCommand(line string) (protocol.InboundMessage, error) {
	return protocol.InboundMessage{}, fmt.Errorf("%w: %q", ErrBadCommand, strings.TrimSpace(line))
}

// ReadCommands parses lines from r onto out until r is exhausted or ctx is
// done, then closes out. Lines that do not parse are answered on w.
func ReadCommands(ctx context.Context, r io.Reader, w io.Writer, out chan<- protocol.InboundMessage) {
	defer close(out)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "?" || strings.TrimSpace(line) == "help" {
			SendText(w, helpText)
			continue
		}

		msg, err := ParseCommand(line)
		if errors.Is(err, ErrEmptyCommand) {
			continue
		}
		if err != nil {
			SendText(w, "%s (type ? for help)\n", err)
			continue
		}

		select {
		case out <- msg:
		case <-ctx.Done():
			return
		}
	}
}

// TerminalWidth is the width of the terminal on fd, or a default when fd
// is not a terminal.
func TerminalWidth(fd int) int {
	if !term.IsTerminal(fd) {
		return defaultWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// IsTerminal reports whether fd is attached to a terminal.
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}
