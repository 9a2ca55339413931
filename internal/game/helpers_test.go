package game

import (
	"testing"

	"github.com/appengine-ltd/oregon-trail/internal/config"
)

// sequence returns a Source that replays the given draws and fails the test
// if the simulation asks for more entropy than the test accounted for.
func sequence(t *testing.T, values ...float64) Source {
	t.Helper()
	i := 0
	return func() float64 {
		if i >= len(values) {
			t.Fatalf("random source exhausted after %d draws", len(values))
		}
		v := values[i]
		i++
		return v
	}
}

// quietCatalogs disables random events and trading posts so tests control
// every draw.
func quietCatalogs() *config.Catalogs {
	cat := config.Default()
	for name, d := range cat.Difficulties {
		d.EventChance = 0
		cat.Difficulties[name] = d
	}
	cat.Trade.InitialChance = 0
	cat.Trade.DailyChance = 0
	return cat
}

func newQuietJourney(t *testing.T, profession, difficulty string, src Source) *Journey {
	t.Helper()
	if src == nil {
		src = Seeded(7)
	}
	j, err := New(quietCatalogs(), Config{
		Name:       "Tester",
		Profession: profession,
		Difficulty: difficulty,
		Rand:       src,
	})
	if err != nil {
		t.Fatalf("new journey: %v", err)
	}
	return j
}

// Construction with a quiet catalog consumes three draws: weather, terrain
// and the closed trade post roll.
var quietStart = []float64{0, 0, 0.5}

func startThen(action ...float64) []float64 {
	return append(append([]float64(nil), quietStart...), action...)
}
