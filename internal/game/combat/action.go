package combat

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidAction is returned for tokens or action types that are not valid human actions.
var ErrInvalidAction = errors.New("invalid action")

// ActionType identifies what an actor does on its turn.
// The zero value (ActionUnknown) is intentionally invalid.
type ActionType int

const (
	ActionUnknown ActionType = iota // zero value; intentionally invalid
	ActionMelee                     // human: 70% to hit, 20-35 damage
	ActionMagic                     // human: never misses, 10-15 damage
	ActionHeal                      // human: restores 10-20 of own health
	ActionAttack                    // computer: 80% to hit, 5-15 damage
)

// String returns the human-readable name of the ActionType.
func (a ActionType) String() string {
	switch a {
	case ActionMelee:
		return "sword attack"
	case ActionMagic:
		return "magic attack"
	case ActionHeal:
		return "heal"
	case ActionAttack:
		return "attack"
	default:
		return "unknown"
	}
}

// Token returns the menu token that selects a human action, or "" for
// actions that cannot be chosen from input.
func (a ActionType) Token() string {
	if !a.IsHumanAction() {
		return ""
	}
	return fmt.Sprintf("%d", int(a))
}

// IsHumanAction reports whether a can be chosen by the human actor.
func (a ActionType) IsHumanAction() bool {
	return a == ActionMelee || a == ActionMagic || a == ActionHeal
}

// HumanActions returns the selectable actions in menu order.
func HumanActions() []ActionType {
	return []ActionType{ActionMelee, ActionMagic, ActionHeal}
}

var actionWords = map[string]ActionType{
	"sword": ActionMelee,
	"magic": ActionMagic,
	"heal":  ActionHeal,
}

// ParseAction maps an input token to a human action.
// Accepted tokens are exactly "1", "2", "3", or the words "sword", "magic",
// "heal" in any letter case. Surrounding whitespace is not accepted.
//
// Postcondition: Returns a human action, or ErrInvalidAction.
func ParseAction(token string) (ActionType, error) {
	switch token {
	case "1":
		return ActionMelee, nil
	case "2":
		return ActionMagic, nil
	case "3":
		return ActionHeal, nil
	}
	if a, ok := actionWords[strings.ToLower(token)]; ok {
		return a, nil
	}
	return ActionUnknown, fmt.Errorf("%w: %q", ErrInvalidAction, token)
}
