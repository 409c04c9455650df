package combat

import "fmt"

// ResolveTick resolves one tick: the human's action against the computer,
// then the computer's attack against the human.
//
// The computer attacks even when the human's action already dropped it to
// zero or below in this tick; aliveness is only checked between ticks.
//
// Precondition: human, computer and r must be non-nil.
// Postcondition: On success returns exactly two results, human first.
// On ErrInvalidAction neither actor is mutated.
func ResolveTick(human, computer *Actor, action ActionType, r Roller) ([]Result, error) {
	first, err := ResolveHumanAction(human, computer, action, r)
	if err != nil {
		return nil, fmt.Errorf("resolving %s action: %w", human.Name, err)
	}
	second := ResolveComputerAttack(computer, human, r)
	return []Result{first, second}, nil
}
