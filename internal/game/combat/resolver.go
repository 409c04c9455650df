package combat

import (
	"fmt"

	"github.com/cory-johannsen/combatsim/internal/game/dice"
)

// Roll tables. Each expression spans exactly the inclusive range in its comment.
var (
	hitRoll        = dice.MustParse("1d100")   // [1,100]
	computerDamage = dice.MustParse("1d11+4")  // [5,15]
	meleeDamage    = dice.MustParse("1d16+19") // [20,35]
	magicDamage    = dice.MustParse("1d6+9")   // [10,15]
	healAmount     = dice.MustParse("1d11+9")  // [10,20]
)

const (
	computerHitChance = 80
	meleeHitChance    = 70
)

// Roller evaluates a dice expression. *dice.Roller satisfies it.
type Roller interface {
	Roll(expr dice.Expression) dice.RollResult
}

// SourceRoller adapts a bare dice.Source to Roller without logging.
type SourceRoller struct {
	Src dice.Source
}

// Roll evaluates expr with r.Src.
func (r SourceRoller) Roll(expr dice.Expression) dice.RollResult {
	return dice.Roll(expr, r.Src)
}

// Result holds the outcome of one resolved action.
type Result struct {
	Action     ActionType
	ActorID    string
	ActorName  string
	TargetID   string
	TargetName string
	// HitRoll is the 1d100 roll for actions with a miss chance; 0 otherwise.
	HitRoll int
	// Hit is false only when a hit roll missed.
	Hit bool
	// Damage is the health removed from the target.
	Damage int
	// Healing is the health restored to the actor.
	Healing   int
	Narrative string
}

// ResolveComputerAttack rolls 1d100; on 80 or less the defender takes 5-15 damage.
//
// Precondition: attacker, defender and r must be non-nil.
// Postcondition: defender.HP decreases by Result.Damage, which is 0 or in [5,15].
func ResolveComputerAttack(attacker, defender *Actor, r Roller) Result {
	res := newResult(ActionAttack, attacker, defender)
	res.HitRoll = r.Roll(hitRoll).Total()
	res.Hit = res.HitRoll <= computerHitChance
	if res.Hit {
		res.Damage = r.Roll(computerDamage).Total()
		defender.ApplyDamage(res.Damage)
		res.Narrative = fmt.Sprintf("%s attacks %s for %d damage.", attacker.Name, defender.Name, res.Damage)
	} else {
		res.Narrative = fmt.Sprintf("%s attacks %s and misses.", attacker.Name, defender.Name)
	}
	return res
}

// ResolveHumanAction applies action for actor against target.
//   - ActionMelee: 1d100; on 70 or less target takes 20-35 damage.
//   - ActionMagic: target always takes 10-15 damage.
//   - ActionHeal: actor regains 10-20 health; target is untouched.
//
// Precondition: actor, target and r must be non-nil.
// Postcondition: Returns ErrInvalidAction without mutating either actor when
// action is not a human action.
func ResolveHumanAction(actor, target *Actor, action ActionType, r Roller) (Result, error) {
	if !action.IsHumanAction() {
		return Result{}, fmt.Errorf("%w: %s", ErrInvalidAction, action)
	}

	res := newResult(action, actor, target)
	switch action {
	case ActionMelee:
		res.HitRoll = r.Roll(hitRoll).Total()
		res.Hit = res.HitRoll <= meleeHitChance
		if !res.Hit {
			res.Narrative = fmt.Sprintf("%s swings at %s and misses.", actor.Name, target.Name)
			return res, nil
		}
		res.Damage = r.Roll(meleeDamage).Total()
		target.ApplyDamage(res.Damage)
		res.Narrative = fmt.Sprintf("%s strikes %s with a sword for %d damage.", actor.Name, target.Name, res.Damage)

	case ActionMagic:
		res.Hit = true
		res.Damage = r.Roll(magicDamage).Total()
		target.ApplyDamage(res.Damage)
		res.Narrative = fmt.Sprintf("%s blasts %s with magic for %d damage.", actor.Name, target.Name, res.Damage)

	case ActionHeal:
		res.Hit = true
		res.TargetID, res.TargetName = actor.ID, actor.Name
		res.Healing = r.Roll(healAmount).Total()
		actor.Heal(res.Healing)
		res.Narrative = fmt.Sprintf("%s heals for %d.", actor.Name, res.Healing)
	}
	return res, nil
}

func newResult(action ActionType, actor, target *Actor) Result {
	return Result{
		Action:     action,
		ActorID:    actor.ID,
		ActorName:  actor.Name,
		TargetID:   target.ID,
		TargetName: target.Name,
	}
}
