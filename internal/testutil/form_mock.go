package testutil

// MockFormRunner is a setup.FormRunner that returns pre-seeded answers
// without rendering any TUI.
type MockFormRunner struct {
	RootAnswer    string
	RootErr       error
	ConfirmAnswer bool
	ConfirmErr    error
	ShellAnswer   string
	ShellErr      error

	// ConfirmMessages records every confirm prompt shown.
	ConfirmMessages []string
}

// RunRootInput returns the pre-seeded workspace root.
func (m *MockFormRunner) RunRootInput(defaultRoot string) (string, error) {
	if m.RootErr != nil {
		return "", m.RootErr
	}
	if m.RootAnswer == "" {
		return defaultRoot, nil
	}
	return m.RootAnswer, nil
}

// RunConfirm returns the pre-seeded confirmation answer.
func (m *MockFormRunner) RunConfirm(message string) (bool, error) {
	m.ConfirmMessages = append(m.ConfirmMessages, message)
	return m.ConfirmAnswer, m.ConfirmErr
}

// RunShellSelect returns the pre-seeded shell choice.
func (m *MockFormRunner) RunShellSelect(detected string) (string, error) {
	if m.ShellErr != nil {
		return "", m.ShellErr
	}
	if m.ShellAnswer == "" {
		return detected, nil
	}
	return m.ShellAnswer, nil
}
