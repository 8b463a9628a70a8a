package common

import tea "github.com/charmbracelet/bubbletea"

type (
	// ReorderedMsg reports the order of a list after an item was dropped
	// into it.
	ReorderedMsg struct {
		List  string
		Item  string
		Items []string
	}
	// TransferredMsg reports that a drag moved from one list to another.
	// The item is not committed until a ReorderedMsg for To arrives.
	TransferredMsg struct {
		From string
		To   string
		Item string
	}
	// CancelledMsg reports a drag that was aborted; the item is back where
	// it started.
	CancelledMsg struct {
		List string
		Item string
	}
)

// Emit wraps msg in a command.
func Emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}
