package test

import (
	"reflect"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

// SimulateModel runs first and every command it leads to against model until
// the queue is empty. Batches and sequences are flattened in order; each
// resulting message is shown to the observers before model sees it.
func SimulateModel[T interface {
	Update(tea.Msg) tea.Cmd
}](model T, first tea.Cmd, observers ...func(tea.Msg)) {
	queue := []tea.Cmd{first}
	for len(queue) > 0 {
		var cmd tea.Cmd
		cmd, queue = queue[0], queue[1:]
		if cmd == nil {
			continue
		}
		msg := cmd()
		switch v := msg.(type) {
		case nil, cursor.BlinkMsg:
		case tea.BatchMsg:
			queue = append(queue, v...)
		default:
			if cmds, ok := asCmdSlice(msg); ok {
				queue = append(queue, cmds...)
				continue
			}
			for _, observe := range observers {
				observe(msg)
			}
			queue = append(queue, model.Update(msg))
		}
	}
}

var cmdType = reflect.TypeOf((tea.Cmd)(nil))

// asCmdSlice unpacks unexported command slices such as the one behind
// tea.Sequence.
func asCmdSlice(msg tea.Msg) ([]tea.Cmd, bool) {
	val := reflect.ValueOf(msg)
	if val.Kind() != reflect.Slice || !val.Type().Elem().AssignableTo(cmdType) {
		return nil, false
	}
	out := make([]tea.Cmd, val.Len())
	for i := range out {
		out[i] = val.Index(i).Interface().(tea.Cmd)
	}
	return out, true
}
