package rangesel

// Fill describes the highlighted part of the track the way a percentage
// sized background does: SizePercent of the track width, placed at
// PositionPercent of the space left over (100 - SizePercent).
type Fill struct {
	PositionPercent float64
	SizePercent     float64
}

// Span resolves the fill to pixel offsets from the track's left edge.
func (f Fill) Span(trackWidth float64) (left, right float64) {
	size := f.SizePercent / 100 * trackWidth
	left = f.PositionPercent / 100 * (trackWidth - size)
	return left, left + size
}

// HandlePlacement is the handle's left edge as a percentage of the track
// width, shifted by half the handle width so its midpoint sits on Value.
type HandlePlacement struct {
	Handle      HandleID
	Value       float64
	LeftPercent float64
	WidthPixel  float64
}

func (p HandlePlacement) LeftPixel(trackWidth float64) float64 {
	return p.LeftPercent / 100 * trackWidth
}

// LabelPlacement positions a value label at its handle's left edge plus
// OffsetPixel, which centres the label under the handle.
type LabelPlacement struct {
	Text        string
	LeftPercent float64
	OffsetPixel float64
	WidthPixel  float64
}

func (l LabelPlacement) LeftPixel(trackWidth float64) float64 {
	return l.LeftPercent/100*trackWidth + l.OffsetPixel
}

type Labels struct {
	BoundMin string
	BoundMax string
	Values   [2]LabelPlacement
}

// Frame is the output of one full pipeline run.
type Frame struct {
	Fill    Fill
	Handles [2]HandlePlacement
	Labels  Labels
}

// Measurer answers the layout queries the pipeline needs.
type Measurer interface {
	TrackGeometry() TrackGeometry
	HandleWidth(h HandleID) float64
	LabelWidth(text string) float64
}

// Renderer receives each stage's output, in pipeline order.
type Renderer interface {
	RenderFill(Fill)
	RenderHandles([2]HandlePlacement)
	RenderLabels(Labels)
}

// Pipeline computes track fill, then handles, then labels. Each stage takes
// the previous stage's result as an argument instead of reading back what a
// renderer committed.
type Pipeline struct {
	Scale  Scale
	Format Formatter
}

func (p Pipeline) Fill(sel Selection) Fill {
	start := p.Scale.Fraction(sel.Min)
	end := p.Scale.Fraction(sel.Max)
	size := end - start
	rest := 1 - size
	// a full-width fill has no remaining space to position within
	pos := 0.0
	if rest != 0 {
		pos = start / rest * 100
	}
	return Fill{PositionPercent: pos, SizePercent: size * 100}
}

func (p Pipeline) Handles(sel Selection, trackWidth float64, handleWidth func(HandleID) float64) [2]HandlePlacement {
	var out [2]HandlePlacement
	for _, h := range [...]HandleID{Min, Max} {
		v := sel.Get(h)
		w := handleWidth(h)
		out[h] = HandlePlacement{
			Handle:      h,
			Value:       v,
			LeftPercent: (p.Scale.Fraction(v) - w/trackWidth/2) * 100,
			WidthPixel:  w,
		}
	}
	return out
}

func (p Pipeline) Labels(handles [2]HandlePlacement, labelWidth func(string) float64) Labels {
	format := p.format()
	out := Labels{
		BoundMin: format(p.Scale.Bounds.Min),
		BoundMax: format(p.Scale.Bounds.Max),
	}
	for _, h := range handles {
		text := format(h.Value)
		w := labelWidth(text)
		out.Values[h.Handle] = LabelPlacement{
			Text:        text,
			LeftPercent: h.LeftPercent,
			OffsetPixel: -(w - h.WidthPixel) / 2,
			WidthPixel:  w,
		}
	}
	return out
}

// Run executes the three stages in order and hands each result to r as soon
// as it is computed. r may be nil.
func (p Pipeline) Run(sel Selection, m Measurer, r Renderer) Frame {
	var f Frame
	f.Fill = p.Fill(sel)
	if r != nil {
		r.RenderFill(f.Fill)
	}
	f.Handles = p.Handles(sel, m.TrackGeometry().WidthPixel, m.HandleWidth)
	if r != nil {
		r.RenderHandles(f.Handles)
	}
	f.Labels = p.Labels(f.Handles, m.LabelWidth)
	if r != nil {
		r.RenderLabels(f.Labels)
	}
	return f
}

func (p Pipeline) format() Formatter {
	if p.Format != nil {
		return p.Format
	}
	return FormatValue
}
