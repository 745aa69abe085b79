package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderAuth renders the login and signup forms.
func (m Model) renderAuth() string {
	var b strings.Builder

	b.WriteString(m.theme.Logo.Render(logoText))
	b.WriteString("\n")
	b.WriteString(m.theme.MutedText.Render("Share your thoughts with the world"))
	b.WriteString("\n\n")

	loginTab := "Login"
	signupTab := "Sign Up"
	if m.view == ViewLogin {
		loginTab = m.theme.Selected.Render(" " + loginTab + " ")
		signupTab = m.theme.MutedText.Render(" " + signupTab + " ")
	} else {
		loginTab = m.theme.MutedText.Render(" " + loginTab + " ")
		signupTab = m.theme.Selected.Render(" " + signupTab + " ")
	}
	b.WriteString(loginTab + " " + signupTab)
	b.WriteString("\n\n")

	labels := map[int]string{
		authFieldUsername: "Username",
		authFieldEmail:    "Email",
		authFieldPassword: "Password",
		authFieldBio:      "Bio",
	}
	for _, idx := range m.authFields() {
		label := labels[idx]
		if idx == m.authFocus {
			b.WriteString(m.theme.Label.Render(label))
		} else {
			b.WriteString(m.theme.MutedText.Render(label))
		}
		b.WriteString("\n")
		b.WriteString(m.authInputs[idx].View())
		b.WriteString("\n")
	}

	if notice := m.renderNotice(); notice != "" {
		b.WriteString("\n" + notice + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderHints(
		[2]string{"enter", "submit"},
		[2]string{"tab", "next field"},
		[2]string{"ctrl+t", "login/signup"},
		[2]string{"ctrl+c", "quit"},
	))

	card := m.theme.Card.Width(m.contentWidth()).Render(b.String())
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
	}
	return card
}
