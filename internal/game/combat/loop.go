package combat

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrGameOver is returned by Step once the loop has reached a terminal state.
var ErrGameOver = errors.New("game over")

// State is the turn loop's position in the fight.
type State int

const (
	StateInProgress State = iota
	StateHumanWon
	StateComputerWon
)

// String returns a human-readable state label.
func (s State) String() string {
	switch s {
	case StateInProgress:
		return "in progress"
	case StateHumanWon:
		return "human won"
	case StateComputerWon:
		return "computer won"
	default:
		return "unknown"
	}
}

// Terminal reports whether s ends the fight.
func (s State) Terminal() bool {
	return s == StateHumanWon || s == StateComputerWon
}

// Evaluate derives the loop state from the two actors' health.
// A living human wins once the computer is down. A fallen human loses,
// including when both actors fell in the same tick.
func Evaluate(human, computer *Actor) State {
	if human.IsAlive() {
		if computer.IsAlive() {
			return StateInProgress
		}
		return StateHumanWon
	}
	return StateComputerWon
}

// Presenter renders the fight to the player.
type Presenter interface {
	// ShowStatus renders both actors, the action menu, and the results of the
	// previous tick (nil before the first tick).
	ShowStatus(human, computer *Actor, last []Result) error
	// ShowOutcome renders the single end-of-game message.
	ShowOutcome(state State, human, computer *Actor) error
}

// ActionReader obtains the human's chosen action.
type ActionReader interface {
	// ReadAction blocks until a valid human action is entered.
	// Invalid input is handled by the reader and never returned as an action.
	ReadAction(ctx context.Context) (ActionType, error)
}

// Loop alternates human and computer turns until one side falls.
// It is not safe for concurrent use.
type Loop struct {
	human     *Actor
	computer  *Actor
	roller    Roller
	presenter Presenter
	input     ActionReader
	logger    *zap.Logger

	state State
	tick  int
	last  []Result
}

// NewLoop creates a loop over the two actors.
//
// Precondition: all arguments must be non-nil.
// Postcondition: State() == Evaluate(human, computer); Tick() == 0.
func NewLoop(human, computer *Actor, r Roller, p Presenter, in ActionReader, logger *zap.Logger) *Loop {
	return &Loop{
		human:     human,
		computer:  computer,
		roller:    r,
		presenter: p,
		input:     in,
		logger:    logger,
		state:     Evaluate(human, computer),
	}
}

// State returns the current loop state.
func (l *Loop) State() State { return l.state }

// Tick returns the number of completed ticks.
func (l *Loop) Tick() int { return l.tick }

// Step runs one tick: status, input, human action, computer attack, terminal check.
//
// Postcondition: On success Tick() has advanced by one. On error no actor
// has been mutated by this call.
func (l *Loop) Step(ctx context.Context) error {
	if l.state.Terminal() {
		return ErrGameOver
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := l.presenter.ShowStatus(l.human, l.computer, l.last); err != nil {
		return fmt.Errorf("showing status: %w", err)
	}

	action, err := l.input.ReadAction(ctx)
	if err != nil {
		return fmt.Errorf("reading action: %w", err)
	}

	results, err := ResolveTick(l.human, l.computer, action, l.roller)
	if err != nil {
		return err
	}

	l.tick++
	l.last = results
	l.state = Evaluate(l.human, l.computer)

	l.logger.Debug("tick resolved",
		zap.Int("tick", l.tick),
		zap.Stringer("action", action),
		zap.String("human_id", l.human.ID),
		zap.Int("human_hp", l.human.HP),
		zap.String("computer_id", l.computer.ID),
		zap.Int("computer_hp", l.computer.HP),
		zap.Stringer("state", l.state),
	)
	return nil
}

// Run steps until a terminal state, then renders the outcome.
//
// Postcondition: Returns a terminal State and nil, or the state at the time
// of failure and the error from the presenter, input, or ctx.
func (l *Loop) Run(ctx context.Context) (State, error) {
	for !l.state.Terminal() {
		if err := l.Step(ctx); err != nil {
			l.logger.Warn("combat loop aborted",
				zap.Int("tick", l.tick),
				zap.Error(err),
			)
			return l.state, err
		}
	}

	l.logger.Info("combat finished",
		zap.Stringer("state", l.state),
		zap.Int("ticks", l.tick),
		zap.Int("human_hp", l.human.HP),
		zap.Int("computer_hp", l.computer.HP),
	)

	if err := l.presenter.ShowOutcome(l.state, l.human, l.computer); err != nil {
		return l.state, fmt.Errorf("showing outcome: %w", err)
	}
	return l.state, nil
}
