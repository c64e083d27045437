package protocol

import (
	"github.com/minaorangina/cardtable/solitaire"
)

// InboundMessage is a message from a player to a table.
// Card is a hand index for Play and a card index for Select. Pile is the
// source for Select and the target for Move.
type InboundMessage struct {
	Command Cmd               `json:"command"`
	Card    int               `json:"card"`
	Pile    solitaire.PileRef `json:"pile"`
}

// CardView is a card as a player sees it.
type CardView struct {
	Label  string `json:"label"`
	Colour string `json:"colour"` // red, black, green, blue, yellow or wild
	FaceUp bool   `json:"faceUp"`
}

// OutboundMessage is a message from a table to a player
type OutboundMessage struct {
	Command   Cmd     `json:"command"`
	TableID   string  `json:"tableID,omitempty"`
	Variant   Variant `json:"variant"`
	Message   string  `json:"message"`
	State     string  `json:"state"`
	Over      bool    `json:"over"`
	Winner    string  `json:"winner,omitempty"`
	Error     string  `json:"error,omitempty"`
	DeckCount int     `json:"deckCount"`

	// shedding games
	Hand          []CardView `json:"hand,omitempty"`
	Playable      []int      `json:"playable,omitempty"`
	OpponentCount int        `json:"opponentCount,omitempty"`
	Top           *CardView  `json:"top,omitempty"`
	Active        string     `json:"active,omitempty"`
	Uno           []string   `json:"uno,omitempty"`

	// solitaire
	Tableau    [][]CardView         `json:"tableau,omitempty"`
	Foundation [][]CardView         `json:"foundation,omitempty"`
	Waste      []CardView           `json:"waste,omitempty"`
	Selection  *solitaire.Selection `json:"selection,omitempty"`
}
