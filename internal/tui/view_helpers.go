package tui

import (
	"strings"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}

// feedbackKind orders how prominently a status line is rendered.
type feedbackKind int

const (
	feedbackNone feedbackKind = iota
	feedbackInfo
	feedbackSuccess
	feedbackWarning
	feedbackError
)

type feedback struct {
	kind feedbackKind
	text string
}

func (f feedback) View() string {
	switch f.kind {
	case feedbackInfo:
		return f.text
	case feedbackSuccess:
		return successStyle.Render("OK: " + f.text)
	case feedbackWarning:
		return warningStyle.Render("Warning: " + f.text)
	case feedbackError:
		return errorStyle.Render("Error: " + f.text)
	default:
		return ""
	}
}
