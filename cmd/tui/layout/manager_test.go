package layout

import (
	"testing"

	"github.com/jesseduffield/lazycore/pkg/boxlayout"
	"github.com/stretchr/testify/assert"
)

func TestBuildLayoutTree(t *testing.T) {
	lm := NewLayoutManager(nil, NewDefaultLayoutConfig())

	dims := boxlayout.ArrangeWindows(lm.BuildLayoutTree(), 0, 0, 100, 40)

	output := dims[PanelOutput]
	input := dims[PanelInput]
	right := dims[PanelStatusRight]
	left := dims[PanelStatusLeft]

	assert.Equal(t, 0, output.Y0)
	assert.Equal(t, 3, input.Y1-input.Y0+1)
	assert.Equal(t, output.Y1+1, input.Y0)
	assert.Equal(t, 39, left.Y0)
	assert.Equal(t, 39, right.Y0)
	assert.Equal(t, 12, right.X1-right.X0+1)
	assert.Equal(t, 99, right.X1)
}

func TestDialogDimensions(t *testing.T) {
	d := DialogDimensions(100, 50, 0.8)
	assert.Equal(t, boxlayout.Dimensions{X0: 10, Y0: 5, X1: 90, Y1: 44}, d)

	full := DialogDimensions(10, 10, 0)
	assert.Equal(t, 0, full.X0)
	assert.Equal(t, 10, full.X1)
}

func TestViewRect(t *testing.T) {
	dims := boxlayout.Dimensions{X0: 0, Y0: 10, X1: 20, Y1: 12}

	x0, y0, x1, y1 := viewRect(dims, true)
	assert.Equal(t, []int{0, 10, 19, 12}, []int{x0, y0, x1, y1})

	x0, y0, x1, y1 = viewRect(dims, false)
	assert.Equal(t, []int{-1, 9, 20, 13}, []int{x0, y0, x1, y1})
}
