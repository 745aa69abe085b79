package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderPost renders a single post with its threaded comments.
func (m Model) renderPost() string {
	post, ok := m.snapshot.PostByID(m.selectedPostID)
	if !ok {
		// The snapshot handler routes away before this can render, but a
		// first paint can race the fallback.
		return m.renderHome()
	}

	header := m.renderHeader("")
	notice := m.renderNotice()
	width := m.contentWidth()
	body := lipgloss.NewStyle().Width(width)

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(truncate(post.Title, width)))
	b.WriteString("\n")
	b.WriteString(m.authorLine(post.UserID, post.CreatedAt))
	b.WriteString("\n\n")
	b.WriteString(body.Render(post.Content))
	b.WriteString("\n\n")

	comments := m.snapshot.CommentsFor(post.ID)
	b.WriteString(m.theme.Label.Render("Comments (" + strconv.Itoa(len(comments)) + ")"))
	b.WriteString("\n")
	if len(comments) == 0 {
		b.WriteString(m.theme.MutedText.Render("No comments yet."))
		b.WriteString("\n")
	}
	me := m.currentUser()
	for i, comment := range comments {
		cursor := "  "
		if i == m.selectedComment && !m.commentFocus {
			cursor = m.theme.Label.Render("▸ ")
		}
		author := m.authorLine(comment.UserID, comment.CreatedAt)
		if comment.UserID == me.ID {
			author += m.theme.MutedText.Render(" (you)")
		}
		b.WriteString(cursor + author)
		b.WriteString("\n")
		b.WriteString("  " + body.Render(comment.Text))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.commentFocus {
		b.WriteString(m.commentInput.View())
		b.WriteString("\n")
		b.WriteString(m.renderHints(
			[2]string{"ctrl+s", "post comment"},
			[2]string{"esc", "cancel"},
		))
	} else {
		b.WriteString(m.renderHints(
			[2]string{"c", "comment"},
			[2]string{"j/k", "select"},
			[2]string{"d", "delete comment"},
			[2]string{"esc", "back"},
			[2]string{"q", "quit"},
		))
	}

	return m.frame(header, notice, "", b.String())
}
