package listkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BrandonKowalski/listkit/pkg/listkit"
)

func TestScrollbar_ClampsAndNotifies(t *testing.T) {
	bar := listkit.NewScrollbar()
	var seen []int
	bar.OnValueChanged(func(v int) { seen = append(seen, v) })

	bar.SetRange(0, 10)
	bar.SetValue(4)
	bar.SetValue(4)
	bar.SetValue(99)
	bar.SetValue(-3)

	assert.Equal(t, []int{4, 10, 0}, seen)
	assert.Equal(t, 0, bar.Value())
	assert.Equal(t, 1, bar.SingleStep())
}

func TestScrollbar_SetRangeClampsValue(t *testing.T) {
	bar := listkit.NewScrollbar()
	bar.SetRange(0, 20)
	bar.SetValue(15)

	bar.SetRange(0, 5)
	assert.Equal(t, 5, bar.Value())

	bar.SetRange(3, 1)
	assert.Equal(t, 3, bar.Minimum())
	assert.Equal(t, 3, bar.Maximum())
	assert.Equal(t, 3, bar.Value())
}

func TestScrollbar_ThumbRect(t *testing.T) {
	bar := listkit.NewScrollbar()
	track := listkit.Rect{X: 184, Y: 0, W: 16, H: 200}

	assert.Equal(t, track, bar.ThumbRect(track), "no range fills the track")

	bar.SetRange(0, 15)
	bar.SetPageStep(5)
	assert.Equal(t, listkit.Rect{X: 184, Y: 0, W: 16, H: 50}, bar.ThumbRect(track))

	bar.SetValue(15)
	assert.Equal(t, listkit.Rect{X: 184, Y: 150, W: 16, H: 50}, bar.ThumbRect(track))

	bar.SetRange(0, 10000)
	bar.SetValue(0)
	assert.Equal(t, 8, bar.ThumbRect(track).H, "thumb never shrinks below the minimum")

	bar.SetMinThumb(1)
	assert.Equal(t, 1, bar.ThumbRect(track).H)
}

func TestScrollbar_PageToward(t *testing.T) {
	bar := listkit.NewScrollbar()
	bar.SetRange(0, 15)
	bar.SetPageStep(5)
	track := listkit.Rect{X: 184, W: 16, H: 200}

	assert.False(t, bar.PageToward(10, track), "press on the thumb")
	assert.True(t, bar.PageToward(190, track))
	assert.Equal(t, 5, bar.Value())
	assert.True(t, bar.PageToward(0, track))
	assert.Equal(t, 0, bar.Value())
}
