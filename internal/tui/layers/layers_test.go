package layers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateCenteredLayer_Empty(t *testing.T) {
	assert.Nil(t, CreateCenteredLayer("", 80, 24))
}

func TestCreateCenteredLayer_NotNil(t *testing.T) {
	assert.NotNil(t, CreateCenteredLayer("box", 80, 24))
	// Larger than the screen still produces a layer, pinned to the corner
	assert.NotNil(t, CreateCenteredLayer("a long line of modal text", 4, 1))
}

func TestCompose_NoOverlays(t *testing.T) {
	assert.Equal(t, "board", Compose("board"))
	assert.Equal(t, "board", Compose("board", nil))
}
