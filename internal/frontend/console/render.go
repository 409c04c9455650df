package console

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/combatsim/internal/game/combat"
)

// Fixed player-facing text.
const (
	MenuText    = "Choose 1 for sword attack, 2 for magic attack, or 3 to heal"
	RepromptMsg = "Choose either 1, 2, or 3"
	WonMsg      = "You won!"
	LostMsg     = "You lost"
)

// Renderer formats game state as terminal text.
type Renderer struct {
	color palette
}

// NewRenderer creates a Renderer; color enables ANSI styling.
func NewRenderer(color bool) *Renderer {
	return &Renderer{color: palette(color)}
}

// ActorLine renders "<Name> HP: <hp>" with the name exactly as configured.
func (r *Renderer) ActorLine(a *combat.Actor) string {
	hpColor := Green
	if !a.IsAlive() {
		hpColor = Red
	}
	return fmt.Sprintf("%s HP: %s",
		r.color.paint(BrightYellow, a.Name),
		r.color.paint(hpColor, fmt.Sprintf("%d", a.HP)),
	)
}

// Status renders the previous tick's narrative, both actors, and the menu.
func (r *Renderer) Status(human, computer *combat.Actor, last []combat.Result) string {
	var b strings.Builder
	for _, res := range last {
		color := Dim
		if res.Action == combat.ActionAttack && res.Hit {
			color = Red
		}
		b.WriteString(r.color.paint(color, res.Narrative))
		b.WriteString("\n")
	}
	if len(last) > 0 {
		b.WriteString("\n")
	}
	b.WriteString(r.ActorLine(human))
	b.WriteString("\n")
	b.WriteString(r.ActorLine(computer))
	b.WriteString("\n")
	b.WriteString(r.color.paint(Cyan, MenuText))
	b.WriteString("\n")
	return b.String()
}

// Outcome renders the end-of-game message for a terminal state.
func (r *Renderer) Outcome(state combat.State) string {
	if state == combat.StateHumanWon {
		return r.color.paint(BrightGreen, WonMsg)
	}
	return r.color.paint(BrightRed, LostMsg)
}

// Reprompt renders the invalid-input message.
func (r *Renderer) Reprompt() string {
	return r.color.paint(Yellow, RepromptMsg)
}
