package parser

import "testing"

func newTestParser() *Parser {
	return New([]string{"slow", "steady", "grueling"})
}

func TestParseCanonicalVerbs(t *testing.T) {
	p := newTestParser()
	cases := map[string]Kind{
		"travel": KindAction,
		"hunt":   KindAction,
		"rest":   KindAction,
		"trade":  KindAction,
		"help":   KindHelp,
		"status": KindStatus,
		"quit":   KindQuit,
	}
	for input, kind := range cases {
		intent := p.Parse(input)
		if intent.Kind != kind || intent.Clarify != "" {
			t.Fatalf("%q: got kind=%v clarify=%q", input, intent.Kind, intent.Clarify)
		}
		if intent.Confidence != 1.0 {
			t.Fatalf("%q: expected full confidence, got %v", input, intent.Confidence)
		}
	}
}

func TestParseAliases(t *testing.T) {
	p := newTestParser()
	cases := map[string]string{
		"go":     "travel",
		"walk":   "travel",
		"shoot":  "hunt",
		"camp":   "rest",
		"sleep":  "rest",
		"barter": "trade",
		"exit":   "quit",
		"look":   "status",
	}
	for input, verb := range cases {
		intent := p.Parse(input)
		if intent.Verb != verb {
			t.Fatalf("%q: expected verb %q, got %q", input, verb, intent.Verb)
		}
	}
}

func TestParseFuzzyVerbs(t *testing.T) {
	p := newTestParser()
	cases := map[string]string{
		"travl":  "travel",
		"travle": "travel",
		"hunr":   "hunt",
		"restt":  "rest",
	}
	for input, verb := range cases {
		intent := p.Parse(input)
		if intent.Verb != verb || intent.Clarify != "" {
			t.Fatalf("%q: expected %q, got %q (clarify %q)", input, verb, intent.Verb, intent.Clarify)
		}
		if intent.Confidence >= 0.9 {
			t.Fatalf("%q: fuzzy match should not claim high confidence, got %v", input, intent.Confidence)
		}
	}
}

func TestParseTravelPace(t *testing.T) {
	p := newTestParser()

	intent := p.Parse("travel grueling")
	if intent.Pace != "grueling" {
		t.Fatalf("expected grueling, got %q", intent.Pace)
	}
	intent = p.Parse("travel gruel")
	if intent.Pace != "grueling" {
		t.Fatalf("expected prefix to resolve grueling, got %q", intent.Pace)
	}
	intent = p.Parse("travel")
	if intent.Pace != "" || intent.Clarify != "" {
		t.Fatalf("bare travel should keep the current pace, got %+v", intent)
	}
	intent = p.Parse("travel sprint")
	if intent.Clarify == "" {
		t.Fatalf("expected a clarify prompt for an unknown pace")
	}
}

func TestParseHuntAmmo(t *testing.T) {
	p := newTestParser()

	intent := p.Parse("hunt 8")
	if intent.Amount == nil || *intent.Amount != 8 {
		t.Fatalf("expected ammo 8, got %+v", intent.Amount)
	}
	intent = p.Parse("hunt")
	if intent.Amount != nil || intent.Clarify != "" {
		t.Fatalf("bare hunt should leave the default spend, got %+v", intent)
	}
	intent = p.Parse("hunt lots")
	if intent.Clarify == "" {
		t.Fatalf("expected a clarify prompt for a non-numeric ammo count")
	}
}

func TestParseTradeSelection(t *testing.T) {
	p := newTestParser()

	intent := p.Parse("trade 2")
	if intent.Selection == nil || *intent.Selection != 1 {
		t.Fatalf("expected zero-based selection 1, got %+v", intent.Selection)
	}
	intent = p.Parse("trade skip")
	if !intent.Decline {
		t.Fatalf("expected skip to decline")
	}
	intent = p.Parse("trade")
	if intent.Decline || intent.Selection != nil || intent.Clarify != "" {
		t.Fatalf("bare trade should stay open for the shell to resolve, got %+v", intent)
	}
}

func TestParseUnknownInput(t *testing.T) {
	p := newTestParser()

	intent := p.Parse("xyzzy")
	if intent.Kind != KindUnknown || intent.Clarify == "" {
		t.Fatalf("expected an unknown intent with a clarify prompt, got %+v", intent)
	}
	intent = p.Parse("   ")
	if intent.Kind != KindUnknown || intent.Clarify == "" {
		t.Fatalf("expected blank input to ask for a command, got %+v", intent)
	}
}

func TestNormaliseStripsNoise(t *testing.T) {
	if got := normalise("  Travel -- Grueling!  "); got != "travel grueling" {
		t.Fatalf("unexpected normalisation %q", got)
	}
	if got := normalise("???"); got != "" {
		t.Fatalf("expected punctuation-only input to normalise empty, got %q", got)
	}
}
