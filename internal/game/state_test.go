package game

import (
	"errors"
	"testing"
)

func TestNewAppliesPresetAndBonus(t *testing.T) {
	cases := []struct {
		profession string
		difficulty string
		food       int
		ammo       int
		money      int
		health     int
	}{
		{"farmer", "easy", 350, 70, 1400, 105},
		{"banker", "normal", 240, 55, 1700, 100},
		{"carpenter", "normal", 240, 65, 1100, 105},
		{"doctor", "hard", 200, 45, 900, 110},
	}
	for _, tc := range cases {
		j := newQuietJourney(t, tc.profession, tc.difficulty, nil)
		snap := j.Snapshot()
		if snap.Food != tc.food || snap.Ammo != tc.ammo || snap.Money != tc.money || snap.Health != tc.health {
			t.Fatalf("%s/%s: got food=%d ammo=%d money=%d health=%d, want %d/%d/%d/%d",
				tc.profession, tc.difficulty,
				snap.Food, snap.Ammo, snap.Money, snap.Health,
				tc.food, tc.ammo, tc.money, tc.health)
		}
		if snap.Day != 1 || snap.Distance != 0 {
			t.Fatalf("%s/%s: expected day 1 at mile 0, got day %d mile %d",
				tc.profession, tc.difficulty, snap.Day, snap.Distance)
		}
		if !snap.Alive || snap.Won || snap.Over {
			t.Fatalf("%s/%s: expected a fresh non-terminal journey", tc.profession, tc.difficulty)
		}
	}
}

func TestNewStartingHealthNotReclamped(t *testing.T) {
	// The doctor bonus deliberately starts the party above 100; only rest
	// clamps health back into range.
	j := newQuietJourney(t, "doctor", "normal", nil)
	if got := j.Snapshot().Health; got != 110 {
		t.Fatalf("expected starting health 110, got %d", got)
	}
}

func TestNewRejectsUnknownTags(t *testing.T) {
	_, err := New(quietCatalogs(), Config{Name: "T", Profession: "astronaut", Difficulty: "normal"})
	if !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption for profession, got %v", err)
	}
	_, err = New(quietCatalogs(), Config{Name: "T", Profession: "banker", Difficulty: "nightmare"})
	if !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption for difficulty, got %v", err)
	}
}

func TestNewNormalisesIdentityInputs(t *testing.T) {
	j, err := New(quietCatalogs(), Config{Name: "   ", Profession: "  Farmer ", Difficulty: "EASY", Rand: Seeded(1)})
	if err != nil {
		t.Fatalf("new journey: %v", err)
	}
	snap := j.Snapshot()
	if snap.PlayerName != "Pioneer" {
		t.Fatalf("expected blank name to default to Pioneer, got %q", snap.PlayerName)
	}
	if snap.Profession != "farmer" || snap.Difficulty != "easy" {
		t.Fatalf("expected normalised tags, got %q/%q", snap.Profession, snap.Difficulty)
	}
}

func TestTradeFlagAndOffersStayConsistent(t *testing.T) {
	// Across many constructions the availability flag and the offer list
	// must always agree.
	cat := quietCatalogs()
	cat.Trade.InitialChance = 0.5
	for seed := int64(1); seed <= 50; seed++ {
		j, err := New(cat, Config{Name: "T", Profession: "banker", Difficulty: "normal", Rand: Seeded(seed)})
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		snap := j.Snapshot()
		if snap.TradeAvailable != (len(snap.TradeOffers) > 0) {
			t.Fatalf("seed %d: flag %v disagrees with %d offers", seed, snap.TradeAvailable, len(snap.TradeOffers))
		}
	}
}

func TestAvailableActions(t *testing.T) {
	j := newQuietJourney(t, "banker", "normal", nil)
	actions := j.AvailableActions()
	if len(actions) != 3 {
		t.Fatalf("expected 3 actions without a trading post, got %v", actions)
	}

	j.offers = []TradeOffer{{Item: ItemFood, Quantity: 10, Price: 20}}
	j.state.tradeAvailable = true
	actions = j.AvailableActions()
	if len(actions) != 4 || actions[3] != ActionTrade {
		t.Fatalf("expected trade to join the action list, got %v", actions)
	}
}
