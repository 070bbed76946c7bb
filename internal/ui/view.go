package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/stigoleg/mascot-overlay/internal/forward"
	"github.com/stigoleg/mascot-overlay/internal/overlay"
)

// outcomeOrder is the display order of forward counters.
var outcomeOrder = []forward.Outcome{
	forward.Forwarded,
	forward.SkippedInside,
	forward.SkippedDuplicate,
	forward.SkippedDragging,
	forward.SkippedNotReady,
	forward.SkippedHidden,
	forward.Failed,
}

// View renders the current state of the model to a string.
func View(m Model) string {
	switch m.State {
	case StateStarting:
		return Current.Title.Render("Mascot overlay") + "\n\n" +
			Current.Inactive.Render(" starting...") + "\n"
	case StateHelp:
		return helpView(m)
	case StateClosed:
		return Current.Inactive.Render(" overlay closed") + "\n"
	}
	return statusView(m)
}

func statusView(m Model) string {
	st := m.Status
	var b strings.Builder

	b.WriteString(Current.Title.Render("Mascot overlay"))
	b.WriteString(Current.Inactive.Render(st.Title))
	b.WriteString("\n\n")

	var rows []string
	rows = append(rows, row("Backend", backendLine(st)))
	if st.Environment.Guidance != "" {
		rows = append(rows, row("", Current.Warning.Render(st.Environment.Guidance)))
	}
	rows = append(rows, row("Window", windowLine(st)))
	rows = append(rows, row("Drag", Current.Value.Render(st.Drag.String())))
	rows = append(rows, row("Forward", outcomesLine(st.Outcomes)))
	last := Current.Inactive.Render("none")
	if st.HasLast {
		last = Current.Value.Render(st.Last.String())
	}
	rows = append(rows, row("Last", last))
	rows = append(rows, row("Samples", fmt.Sprintf("%s %s",
		Current.Counter.Render(fmt.Sprint(st.Samples)),
		Current.Inactive.Render(fmt.Sprintf("(%d dropped)", m.Dropped())))))
	if !m.StartTime.IsZero() {
		rows = append(rows, row("Uptime", Current.Value.Render(time.Since(m.StartTime).Truncate(time.Second).String())))
	}
	b.WriteString(Current.Panel.Render(strings.Join(rows, "\n")))
	b.WriteString("\n")

	if m.ErrorMessage != "" {
		b.WriteString("\n" + Current.Error.Render(m.ErrorMessage) + "\n")
	}

	b.WriteString("\n" + m.Help.View(m.Keys.ForState(m.State)) + "\n")
	return b.String()
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, Current.Label.Render(label), value)
}

func backendLine(st overlay.Status) string {
	env := st.Environment
	switch {
	case env.Provider == "":
		return Current.Inactive.Render("none")
	case st.SourceErr != nil:
		return Current.Warning.Render(fmt.Sprintf("%s: local events only (%v)", env.Provider, st.SourceErr))
	case !env.Available:
		return Current.Warning.Render(env.String())
	default:
		return Current.Active.Render(env.String())
	}
}

func onOff(on bool, yes, no string) string {
	if on {
		return Current.Active.Render(yes)
	}
	return Current.Inactive.Render(no)
}

func windowLine(st overlay.Status) string {
	parts := []string{
		onOff(st.Visible, "visible", "hidden"),
		onOff(st.Ready, "content ready", "content loading"),
		onOff(st.Listening, "listening", "not listening"),
	}
	switch {
	case st.RawInput:
		parts = append(parts, Current.Active.Render("raw input"))
	case st.RawInputErr != nil:
		parts = append(parts, Current.Warning.Render("raw input failed: "+st.RawInputErr.Error()))
	default:
		parts = append(parts, Current.Inactive.Render("raw input pending"))
	}
	return strings.Join(parts, Current.Inactive.Render(" · "))
}

func outcomesLine(counts map[forward.Outcome]int) string {
	parts := make([]string, 0, len(outcomeOrder))
	for _, o := range outcomeOrder {
		parts = append(parts, fmt.Sprintf("%s %s", o, Current.Counter.Render(fmt.Sprint(counts[o]))))
	}
	return strings.Join(parts, Current.Inactive.Render(" · "))
}

func helpView(m Model) string {
	var b strings.Builder

	b.WriteString(Current.Title.Render("Mascot overlay help"))
	b.WriteString("\n\n")

	lines := []string{
		"The mascot window follows your cursor across the whole screen.",
		"Drag the mascot with the primary button to move it.",
		"",
		"Forward counters:",
		"  forwarded  cursor outside the window, sent to the content",
		"  inside     cursor over the window, the content saw it natively",
		"  duplicate  same position as the last forwarded sample",
		"  dragging   suppressed while the window moves",
		"  not-ready  content still loading",
		"  hidden     window hidden",
		"  failed     script injection failed",
	}
	b.WriteString(Current.Help.Render(strings.Join(lines, "\n")))
	b.WriteString("\n\n")
	b.WriteString(m.Help.FullHelpView(m.Keys.ForState(m.State).FullHelp()))
	b.WriteString("\n")
	return b.String()
}
