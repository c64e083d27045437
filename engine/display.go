package engine

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fatih/color"

	"github.com/minaorangina/cardtable/protocol"
	"github.com/minaorangina/cardtable/solitaire"
)

const (
	defaultWidth = 80
	cardGap      = "  "
)

var titles = map[protocol.Variant]string{
	protocol.CrazyEights: "Crazy Eights",
	protocol.Uno:         "UNO",
	protocol.Solitaire:   "Solitaire",
}

func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

// TextRenderer draws snapshots as plain or coloured text.
type TextRenderer struct {
	w       io.Writer
	width   int
	palette map[string]*color.Color
}

// NewTextRenderer writes to w, wrapping hands at width columns. Colour is
// only used when useColour is set.
func NewTextRenderer(w io.Writer, width int, useColour bool) *TextRenderer {
	if width <= 0 {
		width = defaultWidth
	}

	palette := map[string]*color.Color{
		"red":    color.New(color.FgRed, color.Bold),
		"black":  color.New(color.FgWhite, color.Bold),
		"green":  color.New(color.FgGreen, color.Bold),
		"blue":   color.New(color.FgBlue, color.Bold),
		"yellow": color.New(color.FgYellow, color.Bold),
		"wild":   color.New(color.FgMagenta, color.Bold),
		"error":  color.New(color.FgRed),
		"title":  color.New(color.FgCyan, color.Bold),
	}
	for _, c := range palette {
		if useColour {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return &TextRenderer{w: w, width: width, palette: palette}
}

func (r *TextRenderer) Render(msg protocol.OutboundMessage) error {
	var text string
	if msg.Variant == protocol.Solitaire {
		text = r.buildSolitaireText(msg)
	} else {
		text = r.buildSheddingText(msg)
	}

	_, err := io.WriteString(r.w, text)
	return err
}

func (r *TextRenderer) card(v protocol.CardView) string {
	if !v.FaceUp {
		return "##"
	}
	if c, ok := r.palette[v.Colour]; ok {
		return c.Sprint(v.Label)
	}
	return v.Label
}

func (r *TextRenderer) header(msg protocol.OutboundMessage) string {
	return "\n" + r.palette["title"].Sprintf("== %s ==", titles[msg.Variant]) + "\n"
}

func (r *TextRenderer) footer(msg protocol.OutboundMessage) string {
	text := ""
	if msg.Error != "" {
		text += r.palette["error"].Sprintf("! %s", msg.Error) + "\n"
	}
	if msg.Message != "" {
		text += "> " + msg.Message + "\n"
	}
	return text
}

func (r *TextRenderer) buildSheddingText(msg protocol.OutboundMessage) string {
	var b strings.Builder
	b.WriteString(r.header(msg))

	fmt.Fprintf(&b, "CPU: %d cards", msg.OpponentCount)
	if slices.Contains(msg.Uno, "CPU") {
		b.WriteString("  UNO!")
	}
	b.WriteString("\n")

	top := "--"
	if msg.Top != nil {
		top = r.card(*msg.Top)
	}
	fmt.Fprintf(&b, "Deck: %d   Top: %s   Active: %s\n", msg.DeckCount, top, msg.Active)

	b.WriteString("Your hand:")
	if slices.Contains(msg.Uno, "Player") {
		b.WriteString("  UNO!")
	}
	b.WriteString("\n")

	// playable cards are starred, numbered from 1
	line, lineLen := "", 0
	for i, c := range msg.Hand {
		mark := " "
		if slices.Contains(msg.Playable, i) {
			mark = "*"
		}
		plain := fmt.Sprintf("%d)%s%s", i+1, c.Label, mark)
		if lineLen > 0 && lineLen+len(cardGap)+len(plain) > r.width {
			b.WriteString(line + "\n")
			line, lineLen = "", 0
		}
		if lineLen > 0 {
			line += cardGap
			lineLen += len(cardGap)
		}
		line += fmt.Sprintf("%d)%s%s", i+1, r.card(c), mark)
		lineLen += len(plain)
	}
	if line != "" {
		b.WriteString(line + "\n")
	}

	b.WriteString(r.footer(msg))
	return b.String()
}

func (r *TextRenderer) buildSolitaireText(msg protocol.OutboundMessage) string {
	var b strings.Builder
	b.WriteString(r.header(msg))

	waste := "--"
	if n := len(msg.Waste); n > 0 {
		waste = r.card(msg.Waste[n-1])
	}
	fmt.Fprintf(&b, "S: %d   W: %s  ", msg.DeckCount, waste)
	for i, f := range msg.Foundation {
		top := "--"
		if n := len(f); n > 0 {
			top = r.card(f[n-1])
		}
		fmt.Fprintf(&b, " f%d[%s]", i+1, top)
	}
	b.WriteString("\n")

	for i, pile := range msg.Tableau {
		fmt.Fprintf(&b, "t%d:", i+1)
		for j, c := range pile {
			label := r.card(c)
			if msg.Selection != nil && msg.Selection.Pile.Index == i && msg.Selection.Pile.Kind == solitaire.Tableau && j >= msg.Selection.Index {
				label = "[" + label + "]"
			}
			b.WriteString(" " + label)
		}
		b.WriteString("\n")
	}

	if sel := msg.Selection; sel != nil {
		fmt.Fprintf(&b, "Selected: %s card %d\n", sel.Pile, sel.Index+1)
	}

	b.WriteString(r.footer(msg))
	return b.String()
}
