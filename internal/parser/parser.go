// Package parser turns free-text player input into intents for the shell.
// Matching prefers exact verbs, then aliases and prefixes, then a
// levenshtein-bounded fuzzy pass so near-misses like "travl" still land.
package parser

import (
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

type Kind int

const (
	KindAction Kind = iota
	KindHelp
	KindStatus
	KindQuit
	KindUnknown
)

// Intent is the resolved form of one input line.
type Intent struct {
	Raw        string
	Kind       Kind
	Verb       string
	Pace       string // resolved pace label for travel
	Amount     *int   // ammo to spend for hunt
	Selection  *int   // zero-based trade offer index
	Decline    bool   // explicit skip for trade
	Confidence float64
	Clarify    string // set when the input could not be resolved
}

type phrase struct {
	canonical string
	alias     string
	kind      Kind
}

type Parser struct {
	phrases []phrase
	paces   []string
}

// New builds a parser aware of the given pace labels.
func New(paces []string) *Parser {
	p := &Parser{paces: paces}
	p.register(KindAction, "travel", "go", "move", "ride", "walk", "march")
	p.register(KindAction, "hunt", "shoot")
	p.register(KindAction, "rest", "sleep", "camp", "recover")
	p.register(KindAction, "trade", "shop", "barter", "buy", "sell")
	p.register(KindHelp, "help", "commands")
	p.register(KindStatus, "status", "look", "stats", "report")
	p.register(KindQuit, "quit", "exit", "menu", "q")
	return p
}

func (p *Parser) register(kind Kind, canonical string, aliases ...string) {
	p.phrases = append(p.phrases, phrase{canonical: canonical, alias: canonical, kind: kind})
	for _, a := range aliases {
		p.phrases = append(p.phrases, phrase{canonical: canonical, alias: a, kind: kind})
	}
}

// Parse resolves one raw input line.
func (p *Parser) Parse(raw string) Intent {
	intent := Intent{Raw: raw, Kind: KindUnknown}
	tokens := tokenise(normalise(raw))
	if len(tokens) == 0 {
		intent.Clarify = "Enter a command. Try help."
		return intent
	}

	match, score := p.matchVerb(tokens[0])
	if score < 0.5 {
		intent.Clarify = "I couldn't map that to a command. Try travel, hunt, rest, trade, status, help or quit."
		return intent
	}
	intent.Kind = match.kind
	intent.Verb = match.canonical
	intent.Confidence = score

	if match.kind != KindAction {
		return intent
	}
	p.resolveArgs(&intent, tokens[1:])
	return intent
}

func (p *Parser) matchVerb(token string) (phrase, float64) {
	var best phrase
	bestScore := 0.0
	for _, ph := range p.phrases {
		score := matchToken(token, ph.alias)
		if ph.alias != ph.canonical && score > 0 {
			// Aliases rank just below a canonical hit of the same strength.
			score -= 0.03
		}
		if score > bestScore {
			best, bestScore = ph, score
		}
	}
	return best, bestScore
}

func matchToken(token, candidate string) float64 {
	if token == candidate {
		return 1.0
	}
	if len(token) >= 2 && strings.HasPrefix(candidate, token) {
		return 0.9
	}
	if len(token) < 3 {
		return 0
	}
	dist := levenshtein.ComputeDistance(token, candidate)
	if dist > levenshteinLimit(len(candidate)) {
		return 0
	}
	return 0.72 - (0.08 * float64(dist))
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func (p *Parser) resolveArgs(intent *Intent, args []string) {
	switch intent.Verb {
	case "travel":
		if len(args) == 0 {
			return
		}
		pace, ok := resolveOption(args[0], p.paces)
		if !ok {
			intent.Clarify = "Unknown pace. Choose from " + strings.Join(sorted(p.paces), ", ") + "."
			return
		}
		intent.Pace = pace
	case "hunt":
		if len(args) == 0 {
			return
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			intent.Clarify = "How much ammo? Try hunt 5."
			return
		}
		intent.Amount = &n
	case "trade":
		if len(args) == 0 {
			return
		}
		switch args[0] {
		case "skip", "leave", "none", "no", "decline", "0":
			intent.Decline = true
			return
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			intent.Clarify = "Pick an offer by number (trade 1) or trade skip."
			return
		}
		idx := n - 1
		intent.Selection = &idx
	}
}

func resolveOption(token string, options []string) (string, bool) {
	var best string
	bestScore := 0.0
	for _, opt := range options {
		if score := matchToken(token, opt); score > bestScore {
			best, bestScore = opt, score
		}
	}
	return best, bestScore >= 0.5
}

func sorted(values []string) []string {
	out := append([]string(nil), values...)
	sort.Strings(out)
	return out
}
