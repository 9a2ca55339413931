package config

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed catalogs.yaml
var builtinCatalogs []byte

// Catalogs is the full tuning surface of the simulation: difficulty presets,
// profession bonuses, travel paces, weighted weather/terrain tables and the
// trading-post economics. It is parsed once at startup and treated as
// immutable; the state machine receives it by reference.
type Catalogs struct {
	Difficulties map[string]Difficulty `yaml:"difficulties"`
	Professions  map[string]Profession `yaml:"professions"`
	Paces        map[string]Pace       `yaml:"paces"`
	Weather      []Condition           `yaml:"weather"`
	Terrain      []Condition           `yaml:"terrain"`
	Trade        Trade                 `yaml:"trade"`
}

// Difficulty is a preset of starting resources and daily tuning values.
type Difficulty struct {
	Food              int     `yaml:"food"`
	Ammo              int     `yaml:"ammo"`
	Money             int     `yaml:"money"`
	EventChance       float64 `yaml:"event_chance"`
	RestHealth        int     `yaml:"rest_health"`
	StarvationPenalty int     `yaml:"starvation_penalty"`
	MaxDays           int     `yaml:"max_days"`
}

// Profession holds additive bonuses applied on top of a difficulty preset.
type Profession struct {
	Food   int `yaml:"food"`
	Ammo   int `yaml:"ammo"`
	Money  int `yaml:"money"`
	Health int `yaml:"health"`
}

// Pace maps a travel pace to its base miles per day and food multiplier.
type Pace struct {
	Speed          int     `yaml:"speed"`
	FoodMultiplier float64 `yaml:"food_multiplier"`
}

// Condition is one weighted entry of the weather or terrain table. Weights
// are relative; they are normalised during sampling and need not sum to
// anything in particular.
type Condition struct {
	Label    string  `yaml:"label"`
	Modifier float64 `yaml:"modifier"`
	Weight   int     `yaml:"weight"`
}

// Trade tunes the trading post: spawn probabilities, the chance an offer is
// flipped into a sell, and per-item quantity/price ranges.
type Trade struct {
	InitialChance float64              `yaml:"initial_chance"`
	DailyChance   float64              `yaml:"daily_chance"`
	SellFlip      float64              `yaml:"sell_flip"`
	MaxOffers     int                  `yaml:"max_offers"`
	Items         map[string]TradeItem `yaml:"items"`
}

type TradeItem struct {
	MinQty         int     `yaml:"min_qty"`
	MaxQty         int     `yaml:"max_qty"`
	MinPriceFactor float64 `yaml:"min_price_factor"`
	MaxPriceFactor float64 `yaml:"max_price_factor"`
	PriceFloor     int     `yaml:"price_floor"`
}

// Default returns the builtin catalogs. The embedded file is part of the
// binary, so a parse failure here is a packaging bug.
func Default() *Catalogs {
	c, err := parse(builtinCatalogs)
	if err != nil {
		panic(fmt.Sprintf("config: builtin catalogs: %v", err))
	}
	return c
}

// Load reads catalogs from a YAML file, falling back on nothing: a missing
// or invalid file is the caller's error.
func Load(path string) (*Catalogs, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalogs: %w", err)
	}
	return parse(raw)
}

func parse(raw []byte) (*Catalogs, error) {
	var c Catalogs
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse catalogs: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate rejects catalogs that would leave the state machine without a
// complete table to sample or look up from.
func (c *Catalogs) Validate() error {
	if len(c.Difficulties) == 0 {
		return fmt.Errorf("catalogs: no difficulties defined")
	}
	for name, d := range c.Difficulties {
		if d.MaxDays <= 0 {
			return fmt.Errorf("catalogs: difficulty %q: max_days must be positive", name)
		}
		if d.EventChance < 0 || d.EventChance > 1 {
			return fmt.Errorf("catalogs: difficulty %q: event_chance must be in [0,1]", name)
		}
		if d.Food < 0 || d.Ammo < 0 || d.Money < 0 {
			return fmt.Errorf("catalogs: difficulty %q: starting resources must not be negative", name)
		}
	}
	if len(c.Professions) == 0 {
		return fmt.Errorf("catalogs: no professions defined")
	}
	if len(c.Paces) == 0 {
		return fmt.Errorf("catalogs: no paces defined")
	}
	for name, p := range c.Paces {
		if p.Speed <= 0 {
			return fmt.Errorf("catalogs: pace %q: speed must be positive", name)
		}
		if p.FoodMultiplier < 0 {
			return fmt.Errorf("catalogs: pace %q: food_multiplier must not be negative", name)
		}
	}
	if err := validateConditions("weather", c.Weather); err != nil {
		return err
	}
	if err := validateConditions("terrain", c.Terrain); err != nil {
		return err
	}
	return c.Trade.validate()
}

func validateConditions(table string, conditions []Condition) error {
	if len(conditions) == 0 {
		return fmt.Errorf("catalogs: no %s conditions defined", table)
	}
	total := 0
	for _, cond := range conditions {
		if cond.Label == "" {
			return fmt.Errorf("catalogs: %s condition without a label", table)
		}
		if cond.Weight < 0 {
			return fmt.Errorf("catalogs: %s %q: weight must not be negative", table, cond.Label)
		}
		if cond.Modifier <= 0 {
			return fmt.Errorf("catalogs: %s %q: modifier must be positive", table, cond.Label)
		}
		total += cond.Weight
	}
	if total <= 0 {
		return fmt.Errorf("catalogs: %s weights sum to zero", table)
	}
	return nil
}

func (t Trade) validate() error {
	if t.InitialChance < 0 || t.InitialChance > 1 || t.DailyChance < 0 || t.DailyChance > 1 {
		return fmt.Errorf("catalogs: trade chances must be in [0,1]")
	}
	if t.SellFlip < 0 || t.SellFlip > 1 {
		return fmt.Errorf("catalogs: trade sell_flip must be in [0,1]")
	}
	if t.MaxOffers <= 0 {
		return fmt.Errorf("catalogs: trade max_offers must be positive")
	}
	// The tradeable whitelist is exactly food and ammo.
	for _, item := range []string{"food", "ammo"} {
		spec, ok := t.Items[item]
		if !ok {
			return fmt.Errorf("catalogs: trade item %q missing", item)
		}
		if spec.MinQty <= 0 || spec.MaxQty < spec.MinQty {
			return fmt.Errorf("catalogs: trade item %q: bad quantity range", item)
		}
		if spec.MinPriceFactor <= 0 || spec.MaxPriceFactor < spec.MinPriceFactor {
			return fmt.Errorf("catalogs: trade item %q: bad price factor range", item)
		}
		if spec.PriceFloor <= 0 {
			return fmt.Errorf("catalogs: trade item %q: price_floor must be positive", item)
		}
	}
	for item := range t.Items {
		if item != "food" && item != "ammo" {
			return fmt.Errorf("catalogs: trade item %q is not tradeable", item)
		}
	}
	return nil
}

// PaceNames returns the pace labels in a stable order for prompts.
func (c *Catalogs) PaceNames() []string {
	return sortedKeys(c.Paces)
}

// ProfessionNames returns the profession labels in a stable order.
func (c *Catalogs) ProfessionNames() []string {
	return sortedKeys(c.Professions)
}

// DifficultyNames returns the difficulty labels in a stable order.
func (c *Catalogs) DifficultyNames() []string {
	return sortedKeys(c.Difficulties)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
