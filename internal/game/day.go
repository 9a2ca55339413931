package game

import (
	"fmt"
	"math"
	"strings"
)

// Daily actions.
const (
	ActionTravel = "travel"
	ActionHunt   = "hunt"
	ActionRest   = "rest"
	ActionTrade  = "trade"
)

const defaultHuntAmmo = 5

// ActionParams carries the action-specific inputs. Pace applies to travel
// (empty keeps the current pace), AmmoSpent to hunt (nil spends the default
// 5), OfferIndex to trade (nil declines the post).
type ActionParams struct {
	Pace       string
	AmmoSpent  *int
	OfferIndex *int
}

// PerformAction runs one full day: validation, environment re-roll, the
// chosen action, food consumption, the random event, end-of-day evaluation
// and, on a non-terminal day, the day increment and next trade post. A
// rejected action leaves the state completely untouched; after a terminal
// day every further call fails with ErrGameOver.
func (j *Journey) PerformAction(action string, params ActionParams) (Snapshot, error) {
	if j.over {
		return Snapshot{}, fmt.Errorf("%w: the journey has ended, start a new game to continue", ErrGameOver)
	}
	key := strings.ToLower(strings.TrimSpace(action))
	if err := j.validateAction(key, params); err != nil {
		return Snapshot{}, err
	}

	j.state.dayLog = nil
	j.rollEnvironment()

	foodConsumed := baseFoodPerDay
	switch key {
	case ActionTravel:
		foodConsumed += j.applyTravel(params.Pace)
	case ActionHunt:
		j.applyHunt(params.AmmoSpent)
	case ActionRest:
		j.applyRest()
	case ActionTrade:
		j.log(j.applyTrade(params.OfferIndex))
		// A day at the post is a day not on the move.
		foodConsumed = max(1, baseFoodPerDay-2)
	}

	j.state.Food = max(0, j.state.Food-max(0, foodConsumed))
	j.applyRandomEvent()
	j.endOfDay()

	if !j.over {
		j.state.Day++
		j.rollTradePost(j.cat.Trade.DailyChance)
	}
	return j.Snapshot(), nil
}

// validateAction runs every check an action can fail on before any state is
// touched, so a rejected action never leaves a partial mutation behind.
func (j *Journey) validateAction(key string, params ActionParams) error {
	switch key {
	case ActionTravel:
		pace := j.paceKey(params.Pace)
		if _, ok := j.cat.Paces[pace]; !ok {
			return fmt.Errorf("%w: pace %q, choose from %s",
				ErrInvalidParameter, params.Pace, strings.Join(j.cat.PaceNames(), ", "))
		}
		return nil
	case ActionHunt:
		cost := defaultHuntAmmo
		if params.AmmoSpent != nil {
			cost = *params.AmmoSpent
		}
		if cost <= 0 {
			return fmt.Errorf("%w: ammo spent must be positive when hunting", ErrInvalidParameter)
		}
		if j.state.Ammo < cost {
			return fmt.Errorf("%w to hunt", ErrInsufficientAmmo)
		}
		return nil
	case ActionRest:
		return nil
	case ActionTrade:
		return j.validateTrade(params.OfferIndex)
	default:
		return fmt.Errorf("%w: %q", ErrInvalidAction, key)
	}
}

func (j *Journey) paceKey(pace string) string {
	key := strings.ToLower(strings.TrimSpace(pace))
	if key == "" {
		key = j.state.Pace
	}
	return key
}

// applyTravel moves the party and returns the extra food a harder pace
// burns on top of the daily base.
func (j *Journey) applyTravel(pace string) int {
	key := j.paceKey(pace)
	p := j.cat.Paces[key]
	miles := int(math.Round(float64(p.Speed) * j.weatherModifier() * j.terrainModifier()))
	miles = max(5, miles)
	j.state.Distance += miles
	j.state.Pace = key
	j.log(fmt.Sprintf("You travel %d miles at a %s pace through %s weather and %s terrain.",
		miles, key, strings.ToLower(j.state.Weather), strings.ToLower(j.state.Terrain)))
	return int(math.Ceil(float64(baseFoodPerDay) * math.Max(0, p.FoodMultiplier-1)))
}

func (j *Journey) applyHunt(ammoSpent *int) {
	cost := defaultHuntAmmo
	if ammoSpent != nil {
		cost = *ammoSpent
	}
	j.state.Ammo -= cost
	gained := j.rng.Between(25, 55) + cost*2
	j.state.Food += gained
	j.log(fmt.Sprintf("You spend %d ammo hunting and bring back %d lbs of food.", cost, gained))
}

func (j *Journey) applyRest() {
	previous := j.state.Health
	j.state.Health = min(100, j.state.Health+j.settings.RestHealth)
	gained := j.state.Health - previous
	if gained <= 0 {
		j.log("You rest for the day but feel no better.")
		return
	}
	j.log(fmt.Sprintf("You rest for the day and recover %d health.", gained))
}

// endOfDay applies starvation before the terminal checks, so the day food
// runs out can itself be the day the party dies.
func (j *Journey) endOfDay() {
	if j.state.Food <= 0 {
		j.state.Health = max(0, j.state.Health-j.settings.StarvationPenalty)
		j.log("Without food your health deteriorates quickly.")
	}
	switch {
	case j.state.Health <= 0:
		j.state.Alive = false
		j.state.Status = statusDead
		j.over = true
	case j.state.Distance >= TargetMiles:
		j.state.Won = true
		j.state.Status = statusWon
		j.over = true
	case j.state.Day >= j.settings.MaxDays:
		j.state.Alive = false
		j.state.Status = statusExpired
		j.over = true
	default:
		j.state.Status = statusOnTrail
	}
}
