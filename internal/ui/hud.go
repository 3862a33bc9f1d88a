//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"ising/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// readoutKeys lists the snapshot entries shown below the controls.
var readoutKeys = []string{"running", "frames", "boundary", "sampler", "field", "magnetization", "mean_magnetization"}

var helpLines = []string{
	"space  run / pause",
	"n      single frame",
	"r      reset",
	"1      energy overlay",
	"click  flip spin",
	"q      quit",
}

// HUD renders the parameter panel to the right of the lattice view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []hudControlState
	intSetter    core.IntParameterSetter
	floatSetter  core.FloatParameterSetter
	panelOffsetX int
	title        string

	history []float64
	head    int
	filled  bool
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, history: make([]float64, historyLen)}
	h.title = buildTitle(sim)
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = hudControlState{control: ctrl, value: "--"}
		}
		h.layoutControls()
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Update refreshes the cached parameter snapshot from the simulation, records
// the magnetization history and handles HUD clicks.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
	h.recordHistory()
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the HUD panel anchored to the right edge of the lattice view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	y := h.drawControls()
	y = h.drawReadouts(y)
	y = h.drawHistory(y)
	h.drawHelp(y)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return fmt.Sprintf("%s%s Controls", strings.ToUpper(name[:1]), name[1:])
}

func (h *HUD) recordHistory() {
	param, ok := h.snapshot.Lookup("mean_magnetization")
	if !ok {
		return
	}
	v, err := strconv.ParseFloat(param.Value, 64)
	if err != nil {
		return
	}
	h.history[h.head] = v
	h.head = (h.head + 1) % len(h.history)
	if h.head == 0 {
		h.filled = true
	}
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		state.hasValue = false
		state.value = "--"
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			state.value = strconv.Itoa(parsed)
			if state.control.Key == "boundary_index" {
				if named, ok := h.snapshot.Lookup("boundary"); ok {
					state.value = named.Value
				}
			}
			state.floatValue = float64(parsed)
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			state.floatValue = parsed
			state.value = formatFloat(state.control, parsed)
			state.hasValue = true
		}
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.apply(state, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			h.apply(state, 1)
			return
		}
	}
}

// target returns the value one step away from the current one in direction,
// or false when no setter exists or the bound is already reached.
func (h *HUD) target(state *hudControlState, direction int) (float64, bool) {
	ctrl := state.control
	step := ctrl.Step
	switch ctrl.Type {
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return 0, false
		}
		step = math.Max(1, math.Round(step))
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return 0, false
		}
		if step <= 0 {
			step = 0.05
		}
	default:
		return 0, false
	}
	v := state.floatValue + float64(direction)*step
	if ctrl.HasMin && v < ctrl.Min {
		v = ctrl.Min
	}
	if ctrl.HasMax && v > ctrl.Max {
		v = ctrl.Max
	}
	if math.Abs(v-state.floatValue) < 1e-9 {
		return 0, false
	}
	return v, true
}

func (h *HUD) apply(state *hudControlState, direction int) {
	v, ok := h.target(state, direction)
	if !ok {
		return
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		h.intSetter.SetIntParameter(state.control.Key, int(math.Round(v)))
	case core.ParamTypeFloat:
		h.floatSetter.SetFloatParameter(state.control.Key, v)
	}
}

func (h *HUD) drawControls() int {
	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, titleColor)
	if len(h.controls) == 0 {
		y := panelPadding + headerBaseline + infoSpacing
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, y, dimColor)
		return y + sectionGap
	}
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, labelColor)

		valueColor := labelColor
		if !state.hasValue {
			valueColor = dimColor
		}
		valueY := state.top + valueBaseline
		text.Draw(h.panel, state.value, face, panelPadding, valueY, valueColor)

		_, minusOK := h.target(state, -1)
		_, plusOK := h.target(state, 1)
		h.drawButton(state.minusRect, "-", state.hasValue && minusOK)
		h.drawButton(state.plusRect, "+", state.hasValue && plusOK)
	}
	return controlsTop + len(h.controls)*lineHeight + sectionGap
}

func (h *HUD) drawReadouts(y int) int {
	face := basicfont.Face7x13
	for _, key := range readoutKeys {
		param, ok := h.snapshot.Lookup(key)
		if !ok {
			continue
		}
		value := param.Value
		if param.Type == core.ParamTypeFloat {
			if f, err := strconv.ParseFloat(value, 64); err == nil {
				value = strconv.FormatFloat(f, 'f', 4, 64)
			}
		}
		text.Draw(h.panel, fmt.Sprintf("%-14s %s", param.Label, value), face, panelPadding, y, labelColor)
		y += readoutSpacing
	}
	return y + sectionGap/2
}

// drawHistory plots the mean magnetization over the last historyLen frames on
// a fixed [-1, 1] scale.
func (h *HUD) drawHistory(y int) int {
	left := float32(panelPadding)
	right := float32(h.width - panelPadding)
	top := float32(y)
	bottom := top + plotHeight
	if right <= left {
		return y
	}
	vector.DrawFilledRect(h.panel, left, top, right-left, plotHeight, color.RGBA{R: 28, G: 30, B: 36, A: 255}, false)
	mid := (top + bottom) / 2
	vector.StrokeLine(h.panel, left, mid, right, mid, 1, dimColor, false)

	n := len(h.history)
	count := h.head
	start := 0
	if h.filled {
		count = n
		start = h.head
	}
	if count >= 2 {
		dx := (right - left) / float32(n-1)
		py := func(v float64) float32 {
			return mid - float32(v)*(plotHeight/2)
		}
		prevX := left
		prevY := py(h.history[start%n])
		for i := 1; i < count; i++ {
			x := left + dx*float32(i)
			cy := py(h.history[(start+i)%n])
			vector.StrokeLine(h.panel, prevX, prevY, x, cy, 1.5, plotColor, true)
			prevX, prevY = x, cy
		}
	}
	text.Draw(h.panel, "m(t)", basicfont.Face7x13, panelPadding+4, y+14, dimColor)
	return y + plotHeight + sectionGap
}

func (h *HUD) drawHelp(y int) {
	face := basicfont.Face7x13
	for _, line := range helpLines {
		if y > h.lastHeight-panelPadding {
			return
		}
		text.Draw(h.panel, line, face, panelPadding, y, dimColor)
		y += readoutSpacing
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	vector.DrawFilledRect(h.panel, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	if math.Abs(value) > 0 && math.Abs(value) < 0.001 {
		return strconv.FormatFloat(value, 'g', 3, 64)
	}
	precision := 2
	if ctrl.Step > 0 && ctrl.Step < 0.01 {
		precision = 3
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

var (
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor   = color.RGBA{R: 140, G: 140, B: 150, A: 255}
	plotColor  = color.RGBA{R: 90, G: 170, B: 255, A: 255}
)

const (
	historyLen     = 240
	panelPadding   = 12
	lineHeight     = 40
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 16
	valueBaseline  = 32
	infoSpacing    = 36
	readoutSpacing = 16
	sectionGap     = 16
	plotHeight     = 80
	controlsTop    = panelPadding + headerBaseline + 14
)
