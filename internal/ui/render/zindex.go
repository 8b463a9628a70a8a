package render

// Z-index constants for layered rendering. Higher values render on top.
const (
	// ZBase is for list frames and titles.
	ZBase = 0

	// ZItems is for item rows and placeholders.
	ZItems = 1

	// ZStatus is for the status line.
	ZStatus = 10

	// ZDragProxy is for the node following the pointer during a drag.
	ZDragProxy = 1000
)
