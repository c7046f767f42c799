//go:build js

package ui

import (
	"syscall/js"

	"github.com/ingyamilmolinar/rangeslider/core/rangesel"
)

// initJS exposes the sliders to the embedding page:
//
//	getSelection(name)          -> [min, max] or null
//	setSelection(name, min, max) -> [min, max] after validation, or null
//
// Pass null for min or max to leave that handle alone.
func (g *Game) initJS() {
	js.Global().Set("getSelection", js.FuncOf(func(_ js.Value, args []js.Value) any {
		s := g.sliderByName(jsArg(args, 0))
		if s == nil {
			return js.Null()
		}
		return selectionJS(s.Selection())
	}))
	js.Global().Set("setSelection", js.FuncOf(func(_ js.Value, args []js.Value) any {
		s := g.sliderByName(jsArg(args, 0))
		if s == nil {
			return js.Null()
		}
		var p rangesel.Partial
		if len(args) > 1 && args[1].Type() == js.TypeNumber {
			p.Min = rangesel.Value(args[1].Float())
		}
		if len(args) > 2 && args[2].Type() == js.TypeNumber {
			p.Max = rangesel.Value(args[2].Float())
		}
		return selectionJS(s.SetSelection(p))
	}))
}

// reportStateJS publishes every selection as __selections[name] for tests.
func (g *Game) reportStateJS() {
	obj := js.Global().Get("Object").New()
	for _, s := range g.sliders {
		obj.Set(s.Name, selectionJS(s.Selection()))
	}
	js.Global().Set("__selections", obj)
}

func jsArg(args []js.Value, i int) string {
	if i >= len(args) || args[i].Type() != js.TypeString {
		return ""
	}
	return args[i].String()
}

func selectionJS(sel rangesel.Selection) js.Value {
	return js.ValueOf([]any{sel.Min, sel.Max})
}
