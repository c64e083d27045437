package protocol

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCmd     = errors.New("unknown command")
	ErrUnknownVariant = errors.New("unknown variant")
)

// Cmd represents a command
type Cmd int

const (
	Null Cmd = iota
	// inbound, from a player to a table
	Play   // play a card from hand
	Draw   // draw from the deck or turn the stock
	Select // solitaire: pick up a card
	Move   // solitaire: put the selection down
	Clear  // solitaire: drop the selection
	Quit
	// outbound, from a table to a player
	Snapshot
	Error
	GameOver
)

var CmdNames = map[Cmd]string{
	Null:     "Null",
	Play:     "Play",
	Draw:     "Draw",
	Select:   "Select",
	Move:     "Move",
	Clear:    "Clear",
	Quit:     "Quit",
	Snapshot: "Snapshot",
	Error:    "Error",
	GameOver: "GameOver",
}

var NameToCmd = map[string]Cmd{
	"Null":     Null,
	"Play":     Play,
	"Draw":     Draw,
	"Select":   Select,
	"Move":     Move,
	"Clear":    Clear,
	"Quit":     Quit,
	"Snapshot": Snapshot,
	"Error":    Error,
	"GameOver": GameOver,
}

func (c Cmd) String() string {
	if name, ok := CmdNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Cmd(%d)", int(c))
}

// MarshalText encodes the command by name.
func (c Cmd) MarshalText() ([]byte, error) {
	name, ok := CmdNames[c]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCmd, int(c))
	}
	return []byte(name), nil
}

func (c *Cmd) UnmarshalText(text []byte) error {
	cmd, ok := NameToCmd[string(text)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCmd, text)
	}
	*c = cmd
	return nil
}

// Variant names a game.
type Variant string

const (
	CrazyEights Variant = "crazy8"
	Uno         Variant = "uno"
	Solitaire   Variant = "solitaire"
)

var Variants = []Variant{CrazyEights, Uno, Solitaire}

// ParseVariant accepts a variant name.
func ParseVariant(s string) (Variant, error) {
	for _, v := range Variants {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}
