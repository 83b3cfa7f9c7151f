package gdialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithPNGExt(t *testing.T) {
	assert.Equal(t, "board.png", WithPNGExt("board"))
	assert.Equal(t, "board.PNG", WithPNGExt("board.PNG"))
	assert.Equal(t, "a/b.jpg.png", WithPNGExt("a/b.jpg"))
}
