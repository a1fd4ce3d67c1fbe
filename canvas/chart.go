package canvas

import (
	"github.com/germtb/cellgrid"
	"github.com/germtb/cellgrid/widgets"
)

// GraphType selects how a dataset's points are drawn.
type GraphType uint8

const (
	// Scatter draws each point alone.
	Scatter GraphType = iota
	// LineGraph also joins consecutive points.
	LineGraph
)

// Axis describes one chart axis. Labels are spread evenly along it, first
// label at the low bound; the axis line is drawn only when there are labels.
type Axis struct {
	Title  string
	Bounds [2]float64
	Labels []string
	// Style applies to the axis line and the title.
	Style cellgrid.Style
}

// Dataset is one series of (x, y) points. Only named datasets appear in
// the legend.
type Dataset struct {
	Name      string
	Data      [][2]float64
	Marker    Marker
	GraphType GraphType
	// Style's foreground colors the points and the legend entry.
	Style cellgrid.Style
}

// Chart plots datasets over a pair of axes, each dataset painted through
// its own Canvas. A legend listing named datasets sits in the top right
// corner of the plot.
type Chart struct {
	Block    *widgets.Block
	Style    cellgrid.Style
	XAxis    Axis
	YAxis    Axis
	Datasets []Dataset
	// HideLegend removes the legend whatever its size.
	HideLegend bool
	// LegendLimits caps the legend's width and height, each solved against
	// the plot area. A zero constraint means Ratio(1, 4). A legend that does
	// not fit is not drawn.
	LegendLimits [2]cellgrid.Constraint
}

type chartLayout struct {
	graph cellgrid.Rect

	labelX, axisX       uint16
	hasLabelX, hasAxisX bool
	labelY, axisY       uint16
	hasLabelY, hasAxisY bool

	titleX, titleY       cellgrid.Position
	hasTitleX, hasTitleY bool

	legend cellgrid.Rect
}

func (c Chart) layout(area cellgrid.Rect) chartLayout {
	var l chartLayout
	if area.IsEmpty() {
		return l
	}
	x, y := area.Left(), area.Bottom()-1
	hasXLabels, hasYLabels := len(c.XAxis.Labels) > 0, len(c.YAxis.Labels) > 0

	if hasXLabels && y > area.Top() {
		l.labelX, l.hasLabelX = y, true
		y--
	}
	if hasYLabels {
		l.labelY, l.hasLabelY = x, true
	}
	x += c.yLabelsWidth(area)
	if hasXLabels && y > area.Top() {
		l.axisX, l.hasAxisX = y, true
		y--
	}
	if hasYLabels && x+1 < area.Right() {
		l.axisY, l.hasAxisY = x, true
		x++
	}
	if x < area.Right() {
		l.graph = cellgrid.Rect{X: x, Y: area.Top(), Width: area.Right() - x, Height: y - area.Top() + 1}
	}

	if w := uint16(cellgrid.StringWidth(c.XAxis.Title)); c.XAxis.Title != "" && w < l.graph.Width && l.graph.Height > 2 {
		l.titleX, l.hasTitleX = cellgrid.Position{X: x + l.graph.Width - w, Y: y}, true
	}
	if w := uint16(cellgrid.StringWidth(c.YAxis.Title)); c.YAxis.Title != "" && w+1 < l.graph.Width && l.graph.Height > 2 {
		l.titleY, l.hasTitleY = cellgrid.Position{X: x, Y: area.Top()}, true
	}

	if !c.HideLegend {
		l.legend = c.legendArea(l)
	}
	return l
}

// legendArea returns the legend's rect, or an empty rect when no dataset is
// named or the legend exceeds LegendLimits.
func (c Chart) legendArea(l chartLayout) cellgrid.Rect {
	innerWidth, count := 0, 0
	for _, d := range c.Datasets {
		if d.Name == "" {
			continue
		}
		innerWidth = max(innerWidth, cellgrid.StringWidth(d.Name))
		count++
	}
	if innerWidth == 0 || l.graph.IsEmpty() {
		return cellgrid.Rect{}
	}
	width, height := innerWidth+2, count+2

	limitW, limitH := c.legendLimits()
	maxW := cellgrid.Solve(l.graph, cellgrid.Horizontal, []cellgrid.Constraint{limitW}, cellgrid.FlexStart, 0)[0].Width
	maxH := cellgrid.Solve(l.graph, cellgrid.Vertical, []cellgrid.Constraint{limitH}, cellgrid.FlexStart, 0)[0].Height
	if width > int(maxW) || height > int(maxH) {
		return cellgrid.Rect{}
	}

	y := l.graph.Top()
	if l.hasTitleY && width+cellgrid.StringWidth(c.YAxis.Title) > int(l.graph.Width) {
		y++
	}
	return cellgrid.Rect{X: l.graph.Right() - uint16(width), Y: y, Width: uint16(width), Height: uint16(height)}
}

func (c Chart) legendLimits() (w, h cellgrid.Constraint) {
	w, h = c.LegendLimits[0], c.LegendLimits[1]
	if w == (cellgrid.Constraint{}) {
		w = cellgrid.Ratio(1, 4)
	}
	if h == (cellgrid.Constraint{}) {
		h = cellgrid.Ratio(1, 4)
	}
	return w, h
}

// yLabelsWidth is the room left of the y axis: the widest y label, or the
// part of the first x label hanging past the axis, at most a third of the
// area.
func (c Chart) yLabelsWidth(area cellgrid.Rect) uint16 {
	width := 0
	for _, label := range c.YAxis.Labels {
		width = max(width, cellgrid.StringWidth(label))
	}
	if len(c.XAxis.Labels) > 0 {
		first := cellgrid.StringWidth(c.XAxis.Labels[0])
		if len(c.YAxis.Labels) > 0 {
			first = max(0, first-1)
		}
		width = max(width, first)
	}
	return min(uint16(width), area.Width/3)
}

func (c Chart) Render(area cellgrid.Rect, buf *cellgrid.Buffer) {
	area = area.Intersection(buf.Area())
	if area.IsEmpty() {
		return
	}
	buf.SetStyle(area, c.Style)
	// Titles and the legend are blanked with this before being drawn over
	// the plot.
	corner, _ := buf.Cell(area.X, area.Y)
	base := corner.Style()

	chartArea := area
	if c.Block != nil {
		c.Block.Render(area, buf)
		chartArea = c.Block.Inner(area)
	}
	l := c.layout(chartArea)
	graph := l.graph
	if graph.IsEmpty() {
		return
	}

	c.renderXLabels(buf, l, chartArea)
	c.renderYLabels(buf, l, chartArea)
	c.renderAxes(buf, l)

	for _, d := range c.Datasets {
		Canvas{
			XBounds:    c.XAxis.Bounds,
			YBounds:    c.YAxis.Bounds,
			Marker:     d.Marker,
			Background: c.Style.Bg,
			Paint:      d.paint,
		}.Render(graph, buf)
	}

	if l.hasTitleX {
		renderTitle(buf, l.titleX, graph, c.XAxis, base)
	}
	if l.hasTitleY {
		renderTitle(buf, l.titleY, graph, c.YAxis, base)
	}
	if !l.legend.IsEmpty() {
		c.renderLegend(buf, l.legend, base)
	}
}

func (d Dataset) paint(ctx *Context) {
	color := d.Style.Fg.Or(cellgrid.ColorReset)
	ctx.Draw(Points{Coords: d.Data, Color: color})
	if d.GraphType != LineGraph {
		return
	}
	for i := 1; i < len(d.Data); i++ {
		a, b := d.Data[i-1], d.Data[i]
		ctx.Draw(Line{X1: a[0], Y1: a[1], X2: b[0], Y2: b[1], Color: color})
	}
}

func (c Chart) renderAxes(buf *cellgrid.Buffer, l chartLayout) {
	graph := l.graph
	if l.hasAxisX {
		for x := graph.Left(); x < graph.Right(); x++ {
			buf.Set(x, l.axisX, "─", c.XAxis.Style)
		}
	}
	if l.hasAxisY {
		for y := graph.Top(); y < graph.Bottom(); y++ {
			buf.Set(l.axisY, y, "│", c.YAxis.Style)
		}
	}
	if l.hasAxisX && l.hasAxisY {
		buf.Set(l.axisY, l.axisX, "└", c.XAxis.Style)
	}
}

func (c Chart) renderXLabels(buf *cellgrid.Buffer, l chartLayout, chartArea cellgrid.Rect) {
	labels := c.XAxis.Labels
	if !l.hasLabelX || len(labels) < 2 {
		return
	}
	graph, y := l.graph, l.labelX
	between := graph.Width / uint16(len(labels))

	// The first label ends under the y axis, the last one at the right
	// edge of the plot.
	first := cellgrid.Rect{X: chartArea.Left(), Y: y, Width: graph.Left() - chartArea.Left(), Height: 1}
	renderLabel(buf, labels[0], first, widgets.AlignRight)
	for i, label := range labels[1 : len(labels)-1] {
		x := graph.Left() + uint16(i+1)*between + 1
		renderLabel(buf, label, cellgrid.Rect{X: x, Y: y, Width: max(between, 1) - 1, Height: 1}, widgets.AlignCenter)
	}
	last := cellgrid.Rect{X: graph.Right() - between, Y: y, Width: between, Height: 1}
	renderLabel(buf, labels[len(labels)-1], last, widgets.AlignRight)
}

func (c Chart) renderYLabels(buf *cellgrid.Buffer, l chartLayout, chartArea cellgrid.Rect) {
	labels := c.YAxis.Labels
	if !l.hasLabelY {
		return
	}
	graph := l.graph
	width := max(graph.Left()-chartArea.Left(), 1) - 1
	for i, label := range labels {
		var dy uint16
		if len(labels) > 1 {
			dy = uint16(i) * (graph.Height - 1) / uint16(len(labels)-1)
		}
		if dy >= graph.Height {
			continue
		}
		area := cellgrid.Rect{X: l.labelY, Y: graph.Bottom() - 1 - dy, Width: width, Height: 1}
		renderLabel(buf, label, area, widgets.AlignLeft)
	}
}

func renderLabel(buf *cellgrid.Buffer, label string, area cellgrid.Rect, align widgets.Alignment) {
	width := min(int(area.Width), cellgrid.StringWidth(label))
	if width <= 0 {
		return
	}
	x := area.Left()
	switch align {
	case widgets.AlignCenter:
		x += area.Width/2 - uint16(width)/2
	case widgets.AlignRight:
		x = area.Right() - uint16(width)
	}
	buf.SetStringN(x, area.Top(), label, width, cellgrid.Style{})
}

func renderTitle(buf *cellgrid.Buffer, at cellgrid.Position, graph cellgrid.Rect, axis Axis, base cellgrid.Style) {
	width := min(int(graph.Right())-int(at.X), cellgrid.StringWidth(axis.Title))
	if width <= 0 {
		return
	}
	buf.Fill(cellgrid.Rect{X: at.X, Y: at.Y, Width: uint16(width), Height: 1}, cellgrid.NewCell(" ", base))
	buf.SetStringN(at.X, at.Y, axis.Title, width, axis.Style)
}

func (c Chart) renderLegend(buf *cellgrid.Buffer, area cellgrid.Rect, base cellgrid.Style) {
	buf.Fill(area, cellgrid.NewCell(" ", base))
	widgets.Block{Border: widgets.BorderSingle}.Render(area, buf)
	row := area.Y + 1
	for _, d := range c.Datasets {
		if d.Name == "" {
			continue
		}
		buf.SetStringN(area.X+1, row, d.Name, int(area.Width)-2, d.Style)
		row++
	}
}
