package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
)

func (m *Model) initAuthInputs() {
	username := textinput.New()
	username.Placeholder = "Username"
	username.CharLimit = 40

	email := textinput.New()
	email.Placeholder = "Email"
	email.CharLimit = 80

	password := textinput.New()
	password.Placeholder = "Password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 80

	bio := textinput.New()
	bio.Placeholder = "Bio (optional)"
	bio.CharLimit = 200

	m.authInputs[authFieldUsername] = username
	m.authInputs[authFieldEmail] = email
	m.authInputs[authFieldPassword] = password
	m.authInputs[authFieldBio] = bio

	m.authFocus = authFieldEmail
	m.authInputs[m.authFocus].Focus()
}

func (m *Model) initPostForm() {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 120

	body := textarea.New()
	body.Placeholder = "Write your post..."
	body.CharLimit = 0
	body.ShowLineNumbers = false

	m.titleInput = title
	m.bodyInput = body
}

func (m *Model) initCommentInput() {
	comment := textarea.New()
	comment.Placeholder = "Write a comment..."
	comment.CharLimit = 0
	comment.ShowLineNumbers = false
	comment.SetHeight(3)
	m.commentInput = comment
}

func (m *Model) resizeInputs() {
	formWidth := m.width - 8
	if formWidth > 72 {
		formWidth = 72
	}
	if formWidth < 20 {
		formWidth = 20
	}
	for i := range m.authInputs {
		m.authInputs[i].Width = formWidth
	}
	m.titleInput.Width = formWidth
	m.bodyInput.SetWidth(formWidth)
	bodyHeight := m.height - 10
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	if bodyHeight > 16 {
		bodyHeight = 16
	}
	m.bodyInput.SetHeight(bodyHeight)
	m.commentInput.SetWidth(formWidth)
}

// authFields lists the active field indexes for the current auth view:
// signup shows all four, login only email and password.
func (m Model) authFields() []int {
	if m.view == ViewSignup {
		return []int{authFieldUsername, authFieldEmail, authFieldPassword, authFieldBio}
	}
	return []int{authFieldEmail, authFieldPassword}
}

// focusAuthField moves focus to the given field index.
func (m *Model) focusAuthField(idx int) {
	for i := range m.authInputs {
		m.authInputs[i].Blur()
	}
	m.authFocus = idx
	m.authInputs[idx].Focus()
}

// cycleAuthFocus advances the auth form focus by delta through the active
// fields, wrapping around.
func (m *Model) cycleAuthFocus(delta int) {
	fields := m.authFields()
	pos := 0
	for i, f := range fields {
		if f == m.authFocus {
			pos = i
			break
		}
	}
	pos = (pos + delta + len(fields)) % len(fields)
	m.focusAuthField(fields[pos])
}

func (m *Model) clearAuthForm() {
	for i := range m.authInputs {
		m.authInputs[i].Reset()
		m.authInputs[i].Blur()
	}
	m.focusAuthField(authFieldEmail)
}

func (m *Model) clearPostForm() {
	m.titleInput.Reset()
	m.bodyInput.Reset()
	m.titleInput.Blur()
	m.bodyInput.Blur()
	m.formFocus = 0
	m.editingID = ""
}

// authValue returns the trimmed value of one auth field; passwords are not
// trimmed.
func (m Model) authValue(idx int) string {
	if idx == authFieldPassword {
		return m.authInputs[idx].Value()
	}
	return strings.TrimSpace(m.authInputs[idx].Value())
}
