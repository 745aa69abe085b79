package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/blogdeck/blogdeck/internal/api"
)

const logoText = "BlogSpace"

// renderHeader renders the top bar: logo, view title, user, channel health.
func (m Model) renderHeader(title string) string {
	parts := []string{m.theme.Logo.Render(logoText)}
	if title != "" {
		parts = append(parts, m.theme.Title.Render(title))
	}
	if user, ok := m.sess.Current(); ok {
		parts = append(parts, m.theme.MutedText.Render("@"+user.Username))
	}
	if m.sess.Active() {
		if m.listener.Connected() {
			parts = append(parts, m.theme.NoticeText.Render("● live"))
		} else {
			parts = append(parts, m.theme.DangerText.Render("○ offline"))
		}
	}
	return strings.Join(parts, "  ")
}

// renderNotice renders the one-line user-facing message area.
func (m Model) renderNotice() string {
	if m.notice == "" {
		return ""
	}
	if m.noticeErr {
		return m.theme.DangerText.Render(m.notice)
	}
	return m.theme.NoticeText.Render(m.notice)
}

// renderHints renders a key-hint bar from label pairs.
func (m Model) renderHints(pairs ...[2]string) string {
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteString(m.theme.Hint.Render("  ·  "))
		}
		b.WriteString(m.theme.Label.Render(p[0]))
		b.WriteString(m.theme.Hint.Render(" " + p[1]))
	}
	return b.String()
}

// contentWidth is the usable width for wrapped text.
func (m Model) contentWidth() int {
	w := m.width - 4
	if w > 80 {
		w = 80
	}
	if w < 20 {
		w = 20
	}
	return w
}

// authorLine renders "author · date" for an entity.
func (m Model) authorLine(userID, createdAt string) string {
	author := m.snapshot.UserByID(userID)
	name := author.Username
	if name == "" {
		name = "unknown"
	}
	return m.theme.MutedText.Render(name + " · " + formatDate(createdAt))
}

func formatDate(createdAt string) string {
	t := api.Post{CreatedAt: createdAt}.ParsedCreatedAt()
	if t.IsZero() {
		return "just now"
	}
	return t.Format("Jan 2, 2006 15:04")
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if max <= 3 || len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// frame stacks the standard screen sections.
func (m Model) frame(sections ...string) string {
	var out []string
	for _, s := range sections {
		if s != "" {
			out = append(out, s)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}
