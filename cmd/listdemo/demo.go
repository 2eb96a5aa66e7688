package main

import (
	"context"
	"image/color"
	"log/slog"
	"math/rand"
	"strconv"
	"time"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/listkit/pkg/listkit"
	"github.com/BrandonKowalski/listkit/pkg/listkit/constants"
)

const (
	minFontSize = 10
	maxFontSize = 13
)

var (
	itemTextColor       = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	itemBackgroundColor = color.RGBA{R: 240, G: 240, B: 240, A: 255}
)

var modeCycle = []constants.SelectionMode{
	constants.SelectionSingle,
	constants.SelectionMulti,
	constants.SelectionNone,
}

// demo holds the state shared by both hosts. Every method except
// toggleRefresh's background goroutine runs on the UI loop.
type demo struct {
	list   *listkit.List
	tr     *translator
	rnd    *rand.Rand
	fruits []string

	interval   time.Duration
	refreshing atomic.Bool
	stop       context.CancelFunc

	log *slog.Logger
}

func newDemo(l *listkit.List, tr *translator, seed int64, interval time.Duration) *demo {
	d := &demo{
		list:     l,
		tr:       tr,
		rnd:      rand.New(rand.NewSource(seed)),
		fruits:   tr.Fruits(),
		interval: interval,
		log:      listkit.GetLogger(),
	}

	l.OnItemClicked(func(index int) {
		d.log.Debug("Item clicked", "index", index)
	})
	l.OnCurrentItemChanged(func(current, previous int) {
		d.log.Debug("Current item changed", "from", previous, "to", current)
	})
	l.OnItemSelectionChanged(func() {
		d.log.Debug("Selection changed", "selected", len(l.SelectedIndices()))
	})
	return d
}

func (d *demo) randomText() string {
	return d.fruits[d.rnd.Intn(len(d.fruits))]
}

func (d *demo) randomItem() listkit.Item {
	return listkit.Item{
		Text:            d.randomText(),
		TextColor:       itemTextColor,
		BackgroundColor: itemBackgroundColor,
		Font:            listkit.FontSpec{PointSize: minFontSize + d.rnd.Intn(maxFontSize-minFontSize+1)},
	}
}

func (d *demo) seed(n int) {
	for i := 0; i < n; i++ {
		d.add()
	}
}

func (d *demo) add() int {
	return d.list.Append(d.randomItem())
}

// removeCurrent removes the current row. It returns a message for the
// user when there is nothing to remove.
func (d *demo) removeCurrent() string {
	current := d.list.CurrentIndex()
	if current == listkit.NoIndex {
		return d.tr.T("SelectFirst")
	}
	if err := d.list.RemoveItem(current); err != nil {
		d.log.Error("Failed to remove item", "index", current, "error", err)
	}
	return ""
}

// canClear returns a message for the user when the list is already empty.
func (d *demo) canClear() string {
	if d.list.Count() == 0 {
		return d.tr.T("AlreadyEmpty")
	}
	return ""
}

func (d *demo) clear() {
	d.list.Clear()
}

func (d *demo) cycleMode() constants.SelectionMode {
	current := d.list.SelectionMode()
	next := modeCycle[0]
	for i, m := range modeCycle {
		if m == current {
			next = modeCycle[(i+1)%len(modeCycle)]
			break
		}
	}
	d.list.SetSelectionMode(next)
	return next
}

// refreshOne rewrites a random row with new text and a new pastel
// background, the way a live data feed would.
func (d *demo) refreshOne() {
	n := d.list.Count()
	if n == 0 {
		return
	}
	index := d.rnd.Intn(n)
	bg := color.RGBA{
		R: uint8(210 + d.rnd.Intn(30)),
		G: uint8(210 + d.rnd.Intn(30)),
		B: uint8(210 + d.rnd.Intn(30)),
		A: 255,
	}
	if err := d.list.SetItemText(index, d.randomText()); err != nil {
		d.log.Debug("Refresh skipped", "index", index, "error", err)
		return
	}
	if err := d.list.SetItemBackgroundColor(index, bg); err != nil {
		d.log.Debug("Refresh skipped", "index", index, "error", err)
	}
}

// toggleRefresh starts or stops the background refresher and reports
// whether it is now running. The refresher only posts to the list.
func (d *demo) toggleRefresh(ctx context.Context) bool {
	if d.refreshing.Load() {
		d.stopRefresh()
		return false
	}
	if d.interval <= 0 {
		return false
	}

	ctx, cancel := context.WithCancel(ctx)
	d.stop = cancel
	d.refreshing.Store(true)

	go func() {
		ticker := time.NewTicker(d.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				d.list.Post(func(*listkit.List) { d.refreshOne() })
			}
		}
	}()
	d.log.Debug("Refresh started", "interval", d.interval)
	return true
}

func (d *demo) stopRefresh() {
	if d.stop != nil {
		d.stop()
		d.stop = nil
	}
	d.refreshing.Store(false)
}

func (d *demo) modeName(m constants.SelectionMode) string {
	switch m {
	case constants.SelectionMulti:
		return d.tr.T("ModeMulti")
	case constants.SelectionNone:
		return d.tr.T("ModeNone")
	default:
		return d.tr.T("ModeSingle")
	}
}

func (d *demo) status() string {
	current := d.tr.T("StatusNone")
	if i := d.list.CurrentIndex(); i != listkit.NoIndex {
		if item, ok := d.list.ItemAt(i); ok {
			current = strconv.Itoa(i+1) + " " + item.Text
		}
	}
	refresh := d.tr.T("RefreshOff")
	if d.refreshing.Load() {
		refresh = d.tr.T("RefreshOn")
	}
	return d.tr.T("Status", map[string]any{
		"Count":    d.list.Count(),
		"Current":  current,
		"Selected": len(d.list.SelectedIndices()),
		"Mode":     d.modeName(d.list.SelectionMode()),
		"Refresh":  refresh,
	})
}

// doubleClicked returns the message shown when index is activated.
func (d *demo) doubleClicked(index int) string {
	item, ok := d.list.ItemAt(index)
	if !ok {
		return ""
	}
	return d.tr.T("DoubleClicked", map[string]any{"Text": item.Text})
}
