// Package graphic draws sampled series on a terminal screen.
package graphic

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/Maokus/MVMNT-sub002/pipeline"
	"github.com/Maokus/MVMNT-sub002/util"
)

const (
	// NumRunes number of runes for sub step bars
	NumRunes = 8

	// ScalingWindow in draw frames
	ScalingWindow = 90

	// PeakThreshold is the level under which autoscale stops tracking.
	PeakThreshold = 0.001
)

var barRunes = [NumRunes]rune{
	' ',
	'▁',
	'▂',
	'▃',
	'▄',
	'▅',
	'▆',
	'▇',
}

var (
	styleDefault = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleCenter  = styleDefault.Foreground(tcell.ColorLightPink)
	styleMessage = styleDefault.Dim(true)
)

// Display renders one series per frame. Waveform series in [-1, 1]
// mirror around a center baseline; non-negative series grow up from
// the bottom row.
type Display struct {
	screen tcell.Screen
	window *util.MovingWindow

	autoScale bool
}

// NewDisplay sets the terminal screen up.
func NewDisplay() (*Display, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create screen")
	}

	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "failed to init screen")
	}

	screen.DisableMouse()
	screen.HideCursor()

	return &Display{
		screen: screen,
		window: util.NewMovingWindow(ScalingWindow),
	}, nil
}

// SetAutoScale toggles moving-window peak scaling for non-negative
// series.
func (d *Display) SetAutoScale(on bool) {
	d.autoScale = on
}

// Start runs the event poller until the context ends or the user quits.
func (d *Display) Start(ctx context.Context) context.Context {
	dispCtx, dispCancel := context.WithCancel(ctx)
	go d.eventPoller(dispCtx, dispCancel)
	return dispCtx
}

func (d *Display) eventPoller(ctx context.Context, cancel context.CancelFunc) {
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return
			case tcell.KeyRune:
				if ev.Rune() == 'q' || ev.Rune() == 'Q' {
					return
				}
			}

		case *tcell.EventInterrupt:
			return

		case *tcell.EventResize:
			d.screen.Sync()
		}
	}
}

// Stop interrupts the event poller.
func (d *Display) Stop() {
	d.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// Close restores the terminal.
func (d *Display) Close() error {
	d.screen.Fini()
	return nil
}

// Width returns the drawable width in columns.
func (d *Display) Width(fallback int) int {
	w, _ := d.screen.Size()
	if w <= 0 {
		return fallback
	}
	return w
}

// Write draws one sampled frame.
func (d *Display) Write(series []float64, outcome pipeline.Outcome) error {
	d.screen.Clear()

	switch outcome {
	case pipeline.OutcomeNoData:
		d.message("no data")
	case pipeline.OutcomeTooShort:
		d.message("not enough samples")
	default:
		d.draw(series)
	}

	d.screen.Show()
	return nil
}

func (d *Display) message(text string) {
	width, height := d.screen.Size()

	col := (width - len(text)) / 2
	if col < 0 {
		col = 0
	}

	for i, r := range text {
		d.screen.SetContent(col+i, height/2, r, nil, styleMessage)
	}
}

func (d *Display) draw(series []float64) {
	width, height := d.screen.Size()
	if width <= 0 || height <= 0 {
		return
	}

	mirrored := false
	peak := 0.0
	for _, v := range series {
		if v < 0 {
			mirrored = true
			v = -v
		}
		if v > peak {
			peak = v
		}
	}

	scale := 1.0
	if d.autoScale && !mirrored {
		if peak >= PeakThreshold {
			d.window.Update(peak)
		}
		if mean, stddev := d.window.Stats(); mean+2*stddev > 1 {
			scale = 1 / (mean + 2*stddev)
		}
	}

	if mirrored {
		d.drawMirrored(series, width, height, scale)
		return
	}
	d.drawBottomUp(series, width, height, scale)
}

// drawMirrored stacks positive samples above and negative samples
// below a center baseline.
func (d *Display) drawMirrored(series []float64, width, height int, scale float64) {
	center := height / 2
	half := float64(center)

	for x := 0; x < width && x < len(series); x++ {
		v := series[x] * scale

		d.screen.SetContent(x, center, '─', nil, styleCenter)

		cells := v * half
		if cells < 0 {
			cells = -cells
		}

		whole := int(cells)
		frac := int((cells - float64(whole)) * NumRunes)

		if series[x] >= 0 {
			for y := 1; y <= whole && center-y >= 0; y++ {
				d.screen.SetContent(x, center-y, '█', nil, styleDefault)
			}
			if frac > 0 && center-whole-1 >= 0 {
				d.screen.SetContent(x, center-whole-1, barRunes[frac], nil, styleDefault)
			}
		} else {
			for y := 1; y <= whole && center+y < height; y++ {
				d.screen.SetContent(x, center+y, '█', nil, styleDefault)
			}
		}
	}
}

// drawBottomUp draws a non-negative series as bars rising from the
// bottom row.
func (d *Display) drawBottomUp(series []float64, width, height int, scale float64) {
	for x := 0; x < width && x < len(series); x++ {
		cells := series[x] * scale * float64(height)
		if cells < 0 {
			cells = 0
		}

		whole := int(cells)
		frac := int((cells - float64(whole)) * NumRunes)

		for y := 0; y < whole && y < height; y++ {
			d.screen.SetContent(x, height-1-y, '█', nil, styleDefault)
		}
		if frac > 0 && whole < height {
			d.screen.SetContent(x, height-1-whole, barRunes[frac], nil, styleDefault)
		}
	}
}
