package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/oregon-trail/internal/game"
)

// Retro green terminal palette.
var (
	green       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	brightGreen = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimGreen    = lipgloss.NewStyle().Foreground(lipgloss.Color("22"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	border      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

const rule = "------------------------------------------------------------"

func titleLine(version string) string {
	title := brightGreen.Render("THE OREGON TRAIL")
	if version != "" {
		title += dimGreen.Render("  v" + version)
	}
	return title
}

func renderHeader(snap game.Snapshot) string {
	var b strings.Builder
	b.WriteString(border.Render(rule) + "\n")
	b.WriteString(brightGreen.Render(fmt.Sprintf("Day %d on the trail", snap.Day)) + "\n")
	b.WriteString(border.Render(rule) + "\n")
	b.WriteString(green.Render(fmt.Sprintf("Weather: %s | Terrain: %s | Pace: %s",
		snap.Weather, snap.Terrain, snap.Pace)) + "\n")
	b.WriteString(green.Render(fmt.Sprintf("Distance: %d/%d miles", snap.Distance, game.TargetMiles)) + "\n")
	b.WriteString(green.Render(fmt.Sprintf("Health: %d | Food: %d lbs | Ammo: %d | Money: $%d",
		snap.Health, snap.Food, snap.Ammo, snap.Money)) + "\n")
	b.WriteString(green.Render("Status: "+snap.Status) + "\n")
	return b.String()
}

func renderOffers(snap game.Snapshot) string {
	if len(snap.TradeOffers) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(brightGreen.Render("Trading Post Offers:") + "\n")
	for i, offer := range snap.TradeOffers {
		b.WriteString(green.Render(fmt.Sprintf("  %d. %s", i+1, offer)) + "\n")
	}
	return b.String()
}

func renderMessages(snap game.Snapshot) string {
	if len(snap.Messages) == 0 {
		return ""
	}
	var b strings.Builder
	for _, msg := range snap.Messages {
		b.WriteString(green.Render("- "+msg) + "\n")
	}
	return b.String()
}
