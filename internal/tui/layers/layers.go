// Package layers provides helpers for composing modal layers over the board
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer positions content at the center of a screen of the given size.
// It returns nil for empty content.
func CreateCenteredLayer(content string, screenWidth, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)

	// Modals always sit above the board
	return lipgloss.NewLayer(content).X(x).Y(y).Z(1)
}

// Compose stacks base and any non-nil overlays into one frame
func Compose(base string, overlays ...*lipgloss.Layer) string {
	stack := []*lipgloss.Layer{lipgloss.NewLayer(base)}
	for _, layer := range overlays {
		if layer != nil {
			stack = append(stack, layer)
		}
	}
	if len(stack) == 1 {
		return base
	}
	return lipgloss.NewCanvas(stack...).Render()
}
