// Package combat implements turn resolution for a one-on-one fight between a
// human-controlled actor and a computer-controlled actor.
package combat

import "github.com/google/uuid"

// Kind distinguishes the human-controlled actor from the computer-controlled one.
type Kind int

const (
	KindHuman Kind = iota
	KindComputer
)

// String returns a human-readable kind label.
func (k Kind) String() string {
	switch k {
	case KindHuman:
		return "human"
	case KindComputer:
		return "computer"
	default:
		return "unknown"
	}
}

// Actor is one participant in the fight.
//
// Invariant: HP is never floored; it may go below zero after a hit and is
// only interpreted through IsAlive.
type Actor struct {
	// ID correlates log lines for this actor.
	ID   string
	Kind Kind
	Name string
	HP   int
}

// NewActor creates an actor with a fresh ID.
//
// Precondition: name must be non-empty; hp should be > 0.
// Postcondition: Returns an actor whose IsAlive() reports hp > 0.
func NewActor(kind Kind, name string, hp int) *Actor {
	return &Actor{
		ID:   uuid.NewString(),
		Kind: kind,
		Name: name,
		HP:   hp,
	}
}

// IsAlive reports whether the actor has health remaining.
//
// Postcondition: Returns true iff HP > 0.
func (a *Actor) IsAlive() bool { return a.HP > 0 }

// ApplyDamage reduces HP by amount. HP may become negative.
//
// Precondition: amount must be >= 0.
func (a *Actor) ApplyDamage(amount int) {
	a.HP -= amount
}

// Heal increases HP by amount. There is no upper cap.
//
// Precondition: amount must be >= 0.
func (a *Actor) Heal(amount int) {
	a.HP += amount
}
