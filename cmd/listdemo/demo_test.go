package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/listkit/pkg/listkit"
	"github.com/BrandonKowalski/listkit/pkg/listkit/constants"
)

func newTestDemo(t *testing.T, mode constants.SelectionMode, n int) *demo {
	t.Helper()
	tr, err := newTranslator("en")
	require.NoError(t, err)

	settings := listkit.DefaultListSettings()
	settings.SelectionMode = mode
	l := listkit.New(settings)
	l.Resize(200, 210)

	d := newDemo(l, tr, 42, 10*time.Millisecond)
	d.seed(n)
	return d
}

func TestDemo_SeedItems(t *testing.T) {
	d := newTestDemo(t, constants.SelectionSingle, 20)

	require.Equal(t, 20, d.list.Count())
	for i := 0; i < d.list.Count(); i++ {
		item, ok := d.list.ItemAt(i)
		require.True(t, ok)
		assert.Contains(t, d.fruits, item.Text)
		assert.GreaterOrEqual(t, item.Font.PointSize, minFontSize)
		assert.LessOrEqual(t, item.Font.PointSize, maxFontSize)
		assert.Equal(t, itemBackgroundColor, item.BackgroundColor)
		assert.Equal(t, itemTextColor, item.TextColor)
	}
	assert.Equal(t, 0, d.list.CurrentIndex())
}

func TestDemo_SameSeedSameItems(t *testing.T) {
	a := newTestDemo(t, constants.SelectionSingle, 10)
	b := newTestDemo(t, constants.SelectionSingle, 10)

	for i := 0; i < 10; i++ {
		x, _ := a.list.ItemAt(i)
		y, _ := b.list.ItemAt(i)
		assert.Equal(t, x, y)
	}
}

func TestDemo_RemoveCurrent(t *testing.T) {
	d := newTestDemo(t, constants.SelectionSingle, 3)
	d.list.SetCurrentIndex(2)

	assert.Empty(t, d.removeCurrent())
	assert.Equal(t, 2, d.list.Count())
	assert.Equal(t, 1, d.list.CurrentIndex())
}

func TestDemo_RemoveWithoutCurrent(t *testing.T) {
	d := newTestDemo(t, constants.SelectionNone, 3)

	assert.Equal(t, "Select an item first", d.removeCurrent())
	assert.Equal(t, 3, d.list.Count())
}

func TestDemo_Clear(t *testing.T) {
	d := newTestDemo(t, constants.SelectionSingle, 3)

	assert.Empty(t, d.canClear())
	d.clear()
	assert.Equal(t, 0, d.list.Count())
	assert.Equal(t, "The list is already empty", d.canClear())
}

func TestDemo_CycleMode(t *testing.T) {
	d := newTestDemo(t, constants.SelectionSingle, 3)

	assert.Equal(t, constants.SelectionMulti, d.cycleMode())
	assert.Equal(t, constants.SelectionNone, d.cycleMode())
	assert.Equal(t, listkit.NoIndex, d.list.CurrentIndex())
	assert.Equal(t, constants.SelectionSingle, d.cycleMode())
}

func TestDemo_RefreshOneChangesBackground(t *testing.T) {
	d := newTestDemo(t, constants.SelectionSingle, 1)

	d.refreshOne()

	item, ok := d.list.ItemAt(0)
	require.True(t, ok)
	assert.NotEqual(t, itemBackgroundColor, item.BackgroundColor)
	assert.GreaterOrEqual(t, item.BackgroundColor.R, uint8(210))
	assert.Less(t, item.BackgroundColor.R, uint8(240))
	assert.Equal(t, uint8(255), item.BackgroundColor.A)
}

func TestDemo_RefreshOneRewritesSingleRow(t *testing.T) {
	d := newTestDemo(t, constants.SelectionSingle, 8)

	d.refreshOne()

	changed := 0
	for i := 0; i < d.list.Count(); i++ {
		item, ok := d.list.ItemAt(i)
		require.True(t, ok)
		if item.BackgroundColor != itemBackgroundColor {
			changed++
			assert.Contains(t, d.fruits, item.Text)
		}
	}
	assert.Equal(t, 8, d.list.Count())
	assert.Equal(t, 1, changed)
}

func TestDemo_RefreshOneOnEmptyList(t *testing.T) {
	d := newTestDemo(t, constants.SelectionSingle, 0)

	assert.NotPanics(t, d.refreshOne)
}

func TestDemo_ToggleRefreshPostsWork(t *testing.T) {
	d := newTestDemo(t, constants.SelectionSingle, 5)

	require.True(t, d.toggleRefresh(context.Background()))
	assert.Eventually(t, d.list.Pending, time.Second, 5*time.Millisecond)

	assert.False(t, d.toggleRefresh(context.Background()))
	assert.False(t, d.refreshing.Load())
	d.list.Drain()
}

func TestDemo_RefreshDisabled(t *testing.T) {
	d := newTestDemo(t, constants.SelectionSingle, 5)
	d.interval = 0

	assert.False(t, d.toggleRefresh(context.Background()))
}

func TestDemo_Status(t *testing.T) {
	d := newTestDemo(t, constants.SelectionMulti, 4)
	d.list.ClickItem(2, constants.ModNone)
	item, _ := d.list.ItemAt(2)

	assert.Equal(t,
		"Items: 4  Current: 3 "+item.Text+"  Selected: 1  Mode: multi  Refresh: off",
		d.status())
}

func TestDemo_StatusEmpty(t *testing.T) {
	d := newTestDemo(t, constants.SelectionSingle, 0)

	assert.Equal(t, "Items: 0  Current: none  Selected: 0  Mode: single  Refresh: off", d.status())
}

func TestDemo_DoubleClicked(t *testing.T) {
	d := newTestDemo(t, constants.SelectionSingle, 2)
	item, _ := d.list.ItemAt(1)

	assert.Equal(t, "You double-clicked: "+item.Text, d.doubleClicked(1))
	assert.Empty(t, d.doubleClicked(5))
}
