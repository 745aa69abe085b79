package ui

import (
	"strings"
)

// renderHome renders the post feed.
func (m Model) renderHome() string {
	header := m.renderHeader("Recent Posts")
	notice := m.renderNotice()

	var b strings.Builder
	if len(m.snapshot.Posts) == 0 {
		if m.snapshot.Loaded {
			b.WriteString(m.theme.MutedText.Render("No posts yet. Press n to write the first one."))
		} else {
			b.WriteString(m.theme.MutedText.Render("Loading posts..."))
		}
	} else {
		me := m.currentUser()
		width := m.contentWidth()
		for i, post := range m.snapshot.Posts {
			comments := len(m.snapshot.CommentsFor(post.ID))
			title := truncate(post.Title, width-4)
			line := title
			if post.UserID == me.ID {
				line += " (you)"
			}
			if i == m.selectedRow {
				b.WriteString(m.theme.Selected.Render("▸ " + line))
			} else {
				b.WriteString("  " + m.theme.Title.Render(line))
			}
			b.WriteString("\n")
			b.WriteString("  " + m.authorLine(post.UserID, post.CreatedAt) +
				m.theme.MutedText.Render(" · "+plural(comments, "comment")))
			b.WriteString("\n")
			b.WriteString("  " + m.theme.MutedText.Render(truncate(post.Content, width-2)))
			b.WriteString("\n\n")
		}
	}

	var footer string
	if m.confirmDelete != "" {
		footer = m.theme.DangerText.Render("Delete this post? (y/n)")
	} else {
		footer = m.renderHints(
			[2]string{"enter", "open"},
			[2]string{"n", "new"},
			[2]string{"e", "edit"},
			[2]string{"d", "delete"},
			[2]string{"p", "profile"},
			[2]string{"r", "reload"},
			[2]string{"L", "logout"},
			[2]string{"q", "quit"},
		)
	}

	return m.frame(header, notice, "", b.String(), footer)
}
