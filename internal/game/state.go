package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/appengine-ltd/oregon-trail/internal/config"
)

const (
	// TargetMiles is the distance that wins the journey.
	TargetMiles = 2000

	baseFoodPerDay = 5
	defaultPace    = "steady"

	statusOnTrail = "On the trail"
	statusWon     = "Congratulations! You have reached Oregon City."
	statusDead    = "You have perished on the trail."
	statusExpired = "Time has run out before you reached Oregon."
)

// State is the mutable record of one journey. It is owned exclusively by its
// Journey and mutated only through PerformAction.
type State struct {
	PlayerName string
	Profession string
	Difficulty string

	Day      int
	Distance int

	Food   int
	Ammo   int
	Money  int
	Health int

	Pace    string
	Weather string
	Terrain string

	Alive  bool
	Won    bool
	Status string

	dayLog         []string
	tradeAvailable bool
}

// Config carries the construction inputs for a journey. Rand takes priority
// over Seed; with neither set the journey seeds itself from the clock.
type Config struct {
	Name       string
	Profession string
	Difficulty string
	Rand       Source
	Seed       int64
}

// Journey is the day-cycle state machine. It is not safe for concurrent use;
// each session owns exactly one Journey.
type Journey struct {
	cat      *config.Catalogs
	rng      Source
	settings config.Difficulty
	state    State
	offers   []TradeOffer
	over     bool
}

// New builds a journey from a difficulty preset plus profession bonuses.
// Profession and difficulty are matched case-insensitively after trimming;
// unknown tags fail with ErrUnknownOption.
func New(cat *config.Catalogs, cfg Config) (*Journey, error) {
	if cat == nil {
		cat = config.Default()
	}
	difficulty := strings.ToLower(strings.TrimSpace(cfg.Difficulty))
	preset, ok := cat.Difficulties[difficulty]
	if !ok {
		return nil, fmt.Errorf("%w: difficulty %q, choose from %s",
			ErrUnknownOption, cfg.Difficulty, strings.Join(cat.DifficultyNames(), ", "))
	}
	profession := strings.ToLower(strings.TrimSpace(cfg.Profession))
	bonus, ok := cat.Professions[profession]
	if !ok {
		return nil, fmt.Errorf("%w: profession %q, choose from %s",
			ErrUnknownOption, cfg.Profession, strings.Join(cat.ProfessionNames(), ", "))
	}

	rng := cfg.Rand
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = Seeded(seed)
	}

	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		name = "Pioneer"
	}

	j := &Journey{
		cat:      cat,
		rng:      rng,
		settings: preset,
		state: State{
			PlayerName: name,
			Profession: profession,
			Difficulty: difficulty,
			Day:        1,
			Food:       preset.Food + bonus.Food,
			Ammo:       preset.Ammo + bonus.Ammo,
			Money:      preset.Money + bonus.Money,
			// Profession bonuses may start health above 100. Only rest
			// clamps; the surplus is the starting edge, not a bug.
			Health: 100 + bonus.Health,
			Pace:   defaultPace,
			Alive:  true,
			Status: statusOnTrail,
		},
	}
	j.rollEnvironment()
	j.rollTradePost(cat.Trade.InitialChance)
	return j, nil
}

// Snapshot is an immutable copy of the state handed to collaborators,
// extended with the day's messages and the current trade offers rendered
// for display.
type Snapshot struct {
	PlayerName string
	Profession string
	Difficulty string

	Day      int
	Distance int

	Food   int
	Ammo   int
	Money  int
	Health int

	Pace    string
	Weather string
	Terrain string

	Alive  bool
	Won    bool
	Over   bool
	Status string

	TradeAvailable bool
	TradeOffers    []string
	Messages       []string
}

// Snapshot returns the current state. The returned value shares nothing with
// the journey's internals.
func (j *Journey) Snapshot() Snapshot {
	s := j.state
	snap := Snapshot{
		PlayerName:     s.PlayerName,
		Profession:     s.Profession,
		Difficulty:     s.Difficulty,
		Day:            s.Day,
		Distance:       s.Distance,
		Food:           s.Food,
		Ammo:           s.Ammo,
		Money:          s.Money,
		Health:         s.Health,
		Pace:           s.Pace,
		Weather:        s.Weather,
		Terrain:        s.Terrain,
		Alive:          s.Alive,
		Won:            s.Won,
		Over:           j.over,
		Status:         s.Status,
		TradeAvailable: s.tradeAvailable,
	}
	snap.Messages = append(snap.Messages, s.dayLog...)
	for _, offer := range j.offers {
		snap.TradeOffers = append(snap.TradeOffers, offer.Describe())
	}
	return snap
}

// Over reports whether the journey has reached a terminal state.
func (j *Journey) Over() bool {
	return j.over
}

// AvailableActions lists the actions the player can take today.
func (j *Journey) AvailableActions() []string {
	actions := []string{ActionTravel, ActionHunt, ActionRest}
	if j.state.tradeAvailable {
		actions = append(actions, ActionTrade)
	}
	return actions
}

// TradeOffers returns a copy of today's trading post offers.
func (j *Journey) TradeOffers() []TradeOffer {
	return append([]TradeOffer(nil), j.offers...)
}

func (j *Journey) log(msg string) {
	j.state.dayLog = append(j.state.dayLog, msg)
}

func (j *Journey) rollEnvironment() {
	j.state.Weather = j.rng.Pick(j.cat.Weather).Label
	j.state.Terrain = j.rng.Pick(j.cat.Terrain).Label
}

func (j *Journey) weatherModifier() float64 {
	return modifierFor(j.cat.Weather, j.state.Weather)
}

func (j *Journey) terrainModifier() float64 {
	return modifierFor(j.cat.Terrain, j.state.Terrain)
}

func modifierFor(table []config.Condition, label string) float64 {
	for _, cond := range table {
		if cond.Label == label {
			return cond.Modifier
		}
	}
	return 1.0
}
