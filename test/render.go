package test

import (
	"strings"

	"github.com/charmbracelet/x/cellbuf"

	"github.com/idursun/dragorder/internal/ui/layout"
	"github.com/idursun/dragorder/internal/ui/render"
)

// RenderImmediate paints an immediate model into a width x height buffer.
func RenderImmediate(model interface {
	ViewRect(dl *render.DisplayContext, box layout.Box)
}, width, height int) string {
	dl := render.NewDisplayContext()
	model.ViewRect(dl, layout.NewBox(cellbuf.Rect(0, 0, width, height)))
	return dl.RenderToString(width, height)
}

// Stripped drops carriage returns and the whitespace around the output and
// around each line, so rendered frames compare by content.
func Stripped(s string) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\r", ""))
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}
