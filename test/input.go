package test

import tea "github.com/charmbracelet/bubbletea"

func mouse(action tea.MouseAction, x, y int) tea.Cmd {
	return func() tea.Msg {
		return tea.MouseMsg{
			X:      x,
			Y:      y,
			Action: action,
			Button: tea.MouseButtonLeft,
		}
	}
}

// MouseDown presses the left button at x, y.
func MouseDown(x, y int) tea.Cmd {
	return mouse(tea.MouseActionPress, x, y)
}

// MouseMove reports motion with the left button held.
func MouseMove(x, y int) tea.Cmd {
	return mouse(tea.MouseActionMotion, x, y)
}

// MouseUp releases the left button at x, y.
func MouseUp(x, y int) tea.Cmd {
	return mouse(tea.MouseActionRelease, x, y)
}

// Drag presses at the first point, moves through the rest and releases at
// the last one.
func Drag(points ...[2]int) tea.Cmd {
	if len(points) == 0 {
		return nil
	}
	cmds := []tea.Cmd{MouseDown(points[0][0], points[0][1])}
	for _, p := range points[1:] {
		cmds = append(cmds, MouseMove(p[0], p[1]))
	}
	last := points[len(points)-1]
	cmds = append(cmds, MouseUp(last[0], last[1]))
	return tea.Sequence(cmds...)
}

// Type presses each rune of runes in order.
func Type(runes string) tea.Cmd {
	var cmds []tea.Cmd
	for _, r := range runes {
		r := r
		cmds = append(cmds, func() tea.Msg {
			return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		})
	}
	return tea.Sequence(cmds...)
}

// Press sends a single special key.
func Press(key tea.KeyType) tea.Cmd {
	return func() tea.Msg {
		return tea.KeyMsg{Type: key}
	}
}
