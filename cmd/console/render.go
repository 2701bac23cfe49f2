package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/room-finder/pkg/building"
	"github.com/jwebster45206/room-finder/pkg/route"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	stepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	numberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	summaryStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)
)

// RenderRoute formats a route as numbered, wrapped direction lines followed
// by a summary box.
func RenderRoute(res *route.Result, width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Route %s", strings.Join(res.Path, " → "))))
	b.WriteString("\n\n")

	wrapWidth := width - 6
	if wrapWidth < 20 {
		wrapWidth = 20
	}
	for i, line := range res.Directions {
		wrapped := wordwrap.String(line, wrapWidth)
		wrapped = strings.ReplaceAll(wrapped, "\n", "\n    ")
		b.WriteString(numberStyle.Render(fmt.Sprintf("%2d. ", i+1)))
		b.WriteString(stepStyle.Render(wrapped))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(summaryStyle.Render(fmt.Sprintf("Distance: %.1f\nSteps: %d\nEstimated time: %s",
		res.Distance, res.TotalSteps, res.EstimatedTime)))
	b.WriteString("\n")
	return b.String()
}

// PlainDirections is the unstyled text copied to the clipboard.
func PlainDirections(res *route.Result) string {
	var b strings.Builder
	for i, line := range res.Directions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, line)
	}
	fmt.Fprintf(&b, "Estimated time: %s\n", res.EstimatedTime)
	return b.String()
}

func RenderNearby(id string, rooms []route.NearbyRoom) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Rooms near " + id))
	b.WriteString("\n")
	if len(rooms) == 0 {
		b.WriteString(promptStyle.Render("No rooms in range."))
		b.WriteString("\n")
		return b.String()
	}
	for _, r := range rooms {
		fmt.Fprintf(&b, "  %s %s %s\n",
			numberStyle.Render(fmt.Sprintf("%6.1f", r.Distance)),
			stepStyle.Render(fmt.Sprintf("%s (%s)", r.Name, r.ID)),
			promptStyle.Render(fmt.Sprintf("floor %d, %s", r.Floor, r.Type)))
	}
	return b.String()
}

func RenderRooms(rooms []building.Summary) string {
	var b strings.Builder
	if len(rooms) == 0 {
		b.WriteString(promptStyle.Render("No matching rooms."))
		b.WriteString("\n")
		return b.String()
	}
	for _, r := range rooms {
		fmt.Fprintf(&b, "  %s %s %s\n",
			numberStyle.Render(fmt.Sprintf("%-6s", r.ID)),
			stepStyle.Render(r.Name),
			promptStyle.Render(fmt.Sprintf("floor %d, %s", r.Floor, r.Type)))
	}
	return b.String()
}
