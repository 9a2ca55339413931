package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/appengine-ltd/oregon-trail/internal/config"
	"github.com/appengine-ltd/oregon-trail/internal/game"
	"github.com/appengine-ltd/oregon-trail/internal/parser"
)

// AppConfig seeds the shell. Name, Profession and Difficulty may arrive from
// flags; whatever is missing is collected by the setup phases.
type AppConfig struct {
	Catalogs   *config.Catalogs
	Name       string
	Profession string
	Difficulty string
	Seed       int64
	Version    string
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	if cfg.Catalogs == nil {
		cfg.Catalogs = config.Default()
	}
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	p := tea.NewProgram(newModel(a.cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type phase int

const (
	phaseName phase = iota
	phaseProfession
	phaseDifficulty
	phaseTrail
	phaseEnded
)

type model struct {
	cfg AppConfig

	phase phase
	idx   int

	professions  []string
	difficulties []string

	name       string
	profession string
	difficulty string

	input textinput.Model

	journey *game.Journey
	parse   *parser.Parser
	snap    game.Snapshot
	status  string
	fatal   error
}

func newModel(cfg AppConfig) model {
	input := textinput.New()
	input.Placeholder = "your name"
	input.CharLimit = 40
	input.Width = 40
	input.Focus()

	m := model{
		cfg:          cfg,
		professions:  cfg.Catalogs.ProfessionNames(),
		difficulties: cfg.Catalogs.DifficultyNames(),
		name:         strings.TrimSpace(cfg.Name),
		profession:   strings.TrimSpace(cfg.Profession),
		difficulty:   strings.TrimSpace(cfg.Difficulty),
		input:        input,
		parse:        parser.New(cfg.Catalogs.PaceNames()),
	}
	m.phase = m.nextSetupPhase()
	if m.phase == phaseTrail {
		m.startJourney()
	}
	return m
}

// nextSetupPhase skips prompts already answered by flags.
func (m *model) nextSetupPhase() phase {
	switch {
	case m.name == "":
		return phaseName
	case m.profession == "":
		return phaseProfession
	case m.difficulty == "":
		return phaseDifficulty
	default:
		return phaseTrail
	}
}

func (m *model) startJourney() {
	j, err := game.New(m.cfg.Catalogs, game.Config{
		Name:       m.name,
		Profession: m.profession,
		Difficulty: m.difficulty,
		Seed:       m.cfg.Seed,
	})
	if err != nil {
		m.fatal = err
		return
	}
	m.journey = j
	m.snap = j.Snapshot()
	m.input.Placeholder = "travel | hunt | rest | trade | help"
	m.input.SetValue("")
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.fatal != nil {
		if _, ok := msg.(tea.KeyMsg); ok {
			return m, tea.Quit
		}
		return m, nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInput(msg)
	}
	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.phase {
	case phaseName:
		return m.updateName(key, msg)
	case phaseProfession:
		return m.updateMenu(key, m.professions)
	case phaseDifficulty:
		return m.updateMenu(key, m.difficulties)
	case phaseTrail:
		return m.updateTrail(key, msg)
	default: // phaseEnded
		switch key.String() {
		case "enter", "q", "esc":
			return m, tea.Quit
		}
		return m, nil
	}
}

func (m model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) updateName(key tea.KeyMsg, msg tea.Msg) (tea.Model, tea.Cmd) {
	if key.String() == "enter" {
		m.name = strings.TrimSpace(m.input.Value())
		if m.name == "" {
			m.name = "Pioneer"
		}
		m.input.SetValue("")
		m.idx = 0
		m.phase = m.nextSetupPhase()
		if m.phase == phaseTrail {
			m.startJourney()
		}
		return m, nil
	}
	return m.updateInput(msg)
}

func (m model) updateMenu(key tea.KeyMsg, options []string) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		m.idx = (m.idx + len(options) - 1) % len(options)
	case "down", "j":
		m.idx = (m.idx + 1) % len(options)
	case "enter":
		if m.phase == phaseProfession {
			m.profession = options[m.idx]
		} else {
			m.difficulty = options[m.idx]
		}
		m.idx = 0
		m.phase = m.nextSetupPhase()
		if m.phase == phaseTrail {
			m.startJourney()
		}
	}
	return m, nil
}

func (m model) updateTrail(key tea.KeyMsg, msg tea.Msg) (tea.Model, tea.Cmd) {
	if key.String() != "enter" {
		return m.updateInput(msg)
	}
	line := m.input.Value()
	m.input.SetValue("")

	intent := m.parse.Parse(line)
	if intent.Clarify != "" {
		m.status = intent.Clarify
		return m, nil
	}
	switch intent.Kind {
	case parser.KindQuit:
		return m, tea.Quit
	case parser.KindHelp:
		m.status = "Actions: travel [pace], hunt [ammo], rest, trade [offer|skip]. Also: status, quit."
		return m, nil
	case parser.KindStatus:
		m.status = "Available today: " + strings.Join(m.journey.AvailableActions(), ", ")
		return m, nil
	}

	params, hold := m.actionParams(intent)
	if hold != "" {
		m.status = hold
		return m, nil
	}
	snap, err := m.journey.PerformAction(intent.Verb, params)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.snap = snap
	m.status = ""
	if snap.Over {
		m.phase = phaseEnded
	}
	return m, nil
}

// actionParams maps a parsed intent onto the state machine's parameters. The
// returned hold message keeps ambiguous trades from declining by accident.
func (m *model) actionParams(intent parser.Intent) (game.ActionParams, string) {
	var params game.ActionParams
	switch intent.Verb {
	case game.ActionTravel:
		params.Pace = intent.Pace
	case game.ActionHunt:
		params.AmmoSpent = intent.Amount
	case game.ActionTrade:
		switch {
		case intent.Selection != nil:
			params.OfferIndex = intent.Selection
		case intent.Decline:
			// nil index declines.
		case len(m.snap.TradeOffers) > 0:
			return params, "Pick an offer by number (trade 1) or trade skip."
		}
	}
	return params, ""
}

func (m model) View() string {
	if m.fatal != nil {
		return warnStyle.Render(m.fatal.Error()) + "\n" + dimGreen.Render("press any key to exit") + "\n"
	}
	switch m.phase {
	case phaseName:
		return m.viewName()
	case phaseProfession:
		return m.viewMenu("Choose your profession:", m.professions)
	case phaseDifficulty:
		return m.viewMenu("Choose your difficulty:", m.difficulties)
	case phaseTrail:
		return m.viewTrail()
	default:
		return m.viewEnded()
	}
}

func (m model) viewName() string {
	out := titleLine(m.cfg.Version) + "\n\n"
	out += green.Render("What is your name, traveler?") + "\n\n"
	out += m.input.View() + "\n\n"
	out += dimGreen.Render("Enter to continue, ctrl+c to quit") + "\n"
	return out
}

func (m model) viewMenu(prompt string, options []string) string {
	out := titleLine(m.cfg.Version) + "\n\n"
	out += green.Render(prompt) + "\n\n"
	for i, option := range options {
		cursor := "  "
		line := green.Render(capitalise(option))
		if i == m.idx {
			cursor = "> "
			line = brightGreen.Render(capitalise(option))
		}
		out += cursor + line + "\n"
	}
	out += "\n" + dimGreen.Render("↑/↓ to move, Enter to select, q to quit") + "\n"
	return out
}

func (m model) viewTrail() string {
	out := renderHeader(m.snap) + "\n"
	if offers := renderOffers(m.snap); offers != "" {
		out += offers + "\n"
	}
	if messages := renderMessages(m.snap); messages != "" {
		out += messages + "\n"
	}
	out += "\n" + m.input.View() + "\n"
	if m.status != "" {
		out += "\n" + warnStyle.Render(m.status) + "\n"
	}
	out += "\n" + dimGreen.Render("help for commands, quit to leave the trail") + "\n"
	return out
}

func (m model) viewEnded() string {
	out := renderHeader(m.snap) + "\n"
	if messages := renderMessages(m.snap); messages != "" {
		out += messages + "\n"
	}
	out += "\n" + brightGreen.Render(m.snap.Status) + "\n"
	if m.snap.Won {
		out += green.Render(fmt.Sprintf("You arrive in Oregon with %d lbs of food, %d ammo, and $%d.",
			m.snap.Food, m.snap.Ammo, m.snap.Money)) + "\n"
	} else {
		out += green.Render("Your journey ends here. Perhaps try a different strategy next time.") + "\n"
	}
	out += "\n" + dimGreen.Render("press Enter to exit") + "\n"
	return out
}

func capitalise(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
