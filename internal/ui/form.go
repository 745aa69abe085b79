package ui

import "strings"

// renderPostForm renders the create and edit forms; they share the same
// inputs, edit carrying the target post's current values.
func (m Model) renderPostForm() string {
	title := "Create New Post"
	if m.view == ViewEdit {
		title = "Edit Post"
	}
	header := m.renderHeader(title)
	notice := m.renderNotice()

	var b strings.Builder
	if m.formFocus == 0 {
		b.WriteString(m.theme.Label.Render("Title"))
	} else {
		b.WriteString(m.theme.MutedText.Render("Title"))
	}
	b.WriteString("\n")
	b.WriteString(m.titleInput.View())
	b.WriteString("\n\n")
	if m.formFocus == 1 {
		b.WriteString(m.theme.Label.Render("Content"))
	} else {
		b.WriteString(m.theme.MutedText.Render("Content"))
	}
	b.WriteString("\n")
	b.WriteString(m.bodyInput.View())
	b.WriteString("\n\n")

	action := "publish"
	if m.view == ViewEdit {
		action = "update"
	}
	b.WriteString(m.renderHints(
		[2]string{"ctrl+s", action},
		[2]string{"tab", "switch field"},
		[2]string{"esc", "cancel"},
	))

	return m.frame(header, notice, "", b.String())
}
