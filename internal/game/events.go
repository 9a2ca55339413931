package game

import "fmt"

// dailyEvents is the fixed categorical distribution of adverse and
// beneficial events. Entries are ordered (upperBound, apply) pairs evaluated
// in sequence against a single uniform roll, which pins the tie-break order.
var dailyEvents = []struct {
	upper float64
	apply func(j *Journey) string
}{
	{0.2, func(j *Journey) string {
		loss := j.rng.Between(10, 30)
		j.state.Food = max(0, j.state.Food-loss)
		return fmt.Sprintf("Spoiled supplies force you to discard %d lbs of food.", loss)
	}},
	{0.4, func(j *Journey) string {
		injury := j.rng.Between(8, 15)
		j.state.Health = max(0, j.state.Health-injury)
		return fmt.Sprintf("A wagon accident injures you for %d health.", injury)
	}},
	{0.6, func(j *Journey) string {
		disease := j.rng.Between(12, 20)
		j.state.Health = max(0, j.state.Health-disease)
		return fmt.Sprintf("You fall ill and lose %d health fighting the sickness.", disease)
	}},
	{0.75, func(j *Journey) string {
		stolen := min(j.state.Ammo, j.rng.Between(4, 10))
		j.state.Ammo -= stolen
		return fmt.Sprintf("Bandits raid your camp and steal %d ammo.", stolen)
	}},
	{0.9, func(j *Journey) string {
		found := j.rng.Between(20, 45)
		j.state.Food += found
		return fmt.Sprintf("You find wild game and add %d lbs of food to your stores.", found)
	}},
	{1.0, func(j *Journey) string {
		j.state.Distance = max(0, j.state.Distance-10)
		return "You lose the trail and backtrack 10 miles."
	}},
}

// applyRandomEvent rolls the daily event gate and, when it fires, applies
// exactly one outcome and logs its message.
func (j *Journey) applyRandomEvent() {
	if j.rng() > j.settings.EventChance {
		return
	}
	roll := j.rng()
	for _, ev := range dailyEvents {
		if roll < ev.upper {
			j.log(ev.apply(j))
			return
		}
	}
}
