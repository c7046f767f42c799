package ui

import (
	"fmt"
	"image"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/ingyamilmolinar/rangeslider/core/rangesel"
	game_log "github.com/ingyamilmolinar/rangeslider/internal/log"
)

const (
	topOffset = 24 // status-line height in px
	rowH      = 80 // vertical space per slider
	marginX   = 40
)

// SliderDef describes one slider shown by Game.
type SliderDef struct {
	Name   string
	Config rangesel.Config
	// Unit is appended to every label, e.g. "%" or " ms".
	Unit string
}

// HooksFactory returns the interaction hooks for the named slider.
type HooksFactory func(name string) rangesel.Hooks

type Game struct {
	sliders []*RangeSlider
	logger  *game_log.Logger

	winW, winH int
}

// New builds one RangeSlider per definition. hooks may be nil.
func New(logger *game_log.Logger, defs []SliderDef, hooks HooksFactory) (*Game, error) {
	if logger == nil {
		logger = game_log.Nop()
	}
	g := &Game{logger: logger, winW: 640, winH: 480}
	for i, d := range defs {
		opts := []rangesel.Option{
			rangesel.WithLogger(logger.With("slider", d.Name)),
			rangesel.WithObserver(g.observer(d.Name)),
		}
		if d.Unit != "" {
			unit := d.Unit
			opts = append(opts, rangesel.WithFormatter(func(v float64) string {
				return rangesel.FormatValue(v) + unit
			}))
		}
		if hooks != nil {
			opts = append(opts, rangesel.WithHooks(hooks(d.Name)))
		}
		s, err := NewRangeSlider(d.Name, g.rowRect(i), d.Config, opts...)
		if err != nil {
			return nil, fmt.Errorf("slider %q: %w", d.Name, err)
		}
		g.sliders = append(g.sliders, s)
	}
	g.initJS()
	g.logger.Infof("[UI] created %d sliders", len(g.sliders))
	return g, nil
}

func (g *Game) Sliders() []*RangeSlider { return g.sliders }

func (g *Game) sliderByName(name string) *RangeSlider {
	for _, s := range g.sliders {
		if s.Name == name {
			return s
		}
	}
	return nil
}

func (g *Game) observer(name string) func(rangesel.Selection) {
	return func(sel rangesel.Selection) {
		g.logger.Debugf("[UI] %s selection=%s", name, sel)
	}
}

func (g *Game) rowRect(i int) image.Rectangle {
	y := topOffset + i*rowH
	return image.Rect(marginX, y, g.winW-marginX, y+rowH)
}

func (g *Game) Layout(w, h int) (int, int) {
	if w != g.winW || h != g.winH {
		g.winW, g.winH = w, h
		for i, s := range g.sliders {
			s.SetRect(g.rowRect(i))
		}
		g.logger.Debugf("[UI] Layout: winW: %d, winH: %d", w, h)
	}
	return w, h
}

// Update polls every slider. Each sees every move and release; only the one
// whose handle or track was pressed reacts.
func (g *Game) Update() error {
	for _, s := range g.sliders {
		s.Update()
	}
	g.reportStateJS()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBG)
	for _, s := range g.sliders {
		s.Draw(screen)
	}
	ebitenutil.DebugPrintAt(screen, g.status(), 4, 4)
}

// status summarises the selections for the debug line.
func (g *Game) status() string {
	parts := make([]string, 0, len(g.sliders))
	for _, s := range g.sliders {
		p := s.Name + "=" + s.Selection().String()
		if h, ok := s.Range().Dragging(); ok {
			p += "*" + h.String()
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, "  ")
}
