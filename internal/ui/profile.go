package ui

import "strings"

// renderProfile renders the current user's profile and their posts.
func (m Model) renderProfile() string {
	header := m.renderHeader("My Profile")
	notice := m.renderNotice()
	me := m.currentUser()
	width := m.contentWidth()

	var card strings.Builder
	card.WriteString(m.theme.Title.Render(me.Username))
	card.WriteString("\n")
	card.WriteString(m.theme.MutedText.Render(me.Email))
	card.WriteString("\n")
	card.WriteString(m.theme.MutedText.Render("Joined " + formatDate(me.CreatedAt)))
	if me.Bio != "" {
		card.WriteString("\n\n")
		card.WriteString(me.Bio)
	}

	myPosts := m.snapshot.PostsBy(me.ID)
	var list strings.Builder
	list.WriteString(m.theme.Label.Render(plural(len(myPosts), "post")))
	list.WriteString("\n")
	if len(myPosts) == 0 {
		list.WriteString(m.theme.MutedText.Render("You haven't created any posts yet."))
		list.WriteString("\n")
	}
	for _, post := range myPosts {
		comments := len(m.snapshot.CommentsFor(post.ID))
		list.WriteString(m.theme.Title.Render(truncate(post.Title, width)))
		list.WriteString("\n")
		list.WriteString(m.theme.MutedText.Render(
			formatDate(post.CreatedAt) + " · " + plural(comments, "comment")))
		list.WriteString("\n")
	}

	footer := m.renderHints(
		[2]string{"esc", "back"},
		[2]string{"L", "logout"},
		[2]string{"q", "quit"},
	)

	return m.frame(
		header,
		notice,
		"",
		m.theme.Card.Width(width).Render(card.String()),
		"",
		list.String(),
		footer,
	)
}
