package prompt

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// CredentialProvider supplies secrets at invocation time. Commands depend on
// the interface so tests can inject a Static provider instead of a terminal.
type CredentialProvider interface {
	Fetch(title string) (string, error)
}

// Interactive asks for a secret on the terminal without echoing it.
type Interactive struct{}

func (Interactive) Fetch(title string) (string, error) {
	var secret string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				EchoMode(huh.EchoModePassword).
				Value(&secret),
		),
	)
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("credential prompt failed: %w", err)
	}
	return secret, nil
}

// Static always returns the same secret. Used in tests.
type Static string

func (s Static) Fetch(string) (string, error) {
	return string(s), nil
}
