package console

import (
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/mapty/internal/app"
	"github.com/2beens/mapty/internal/form"
	"github.com/2beens/mapty/internal/mapview"
	"github.com/2beens/mapty/internal/workout"
)

var ErrMapNotShown = errors.New("map not shown yet")

var (
	_ mapview.Map  = (*Map)(nil)
	_ app.Renderer = (*List)(nil)
	_ app.Notifier = (*Notices)(nil)
	_ form.View    = (*FormView)(nil)
)

// Map is a map that only reports what it would draw.
type Map struct {
	p       *Printer
	handle  mapview.Handle
	onClick func(workout.Coords)
	markers int
}

func NewMap(p *Printer) *Map {
	return &Map{p: p}
}

func (m *Map) Initialize(container string, center workout.Coords, zoom int) (mapview.Handle, error) {
	if m.handle != "" {
		return "", fmt.Errorf("container [%s] already holds a map", container)
	}
	m.handle = mapview.Handle(container)
	m.p.Printf("🗺  map [%s] centered at %s, zoom %d", container, center, zoom)
	return m.handle, nil
}

func (m *Map) OnClick(_ mapview.Handle, fn func(workout.Coords)) {
	m.onClick = fn
}

// Click simulates a click on the map at coords.
func (m *Map) Click(coords workout.Coords) error {
	if m.onClick == nil {
		return ErrMapNotShown
	}
	m.onClick(coords)
	return nil
}

func (m *Map) AddMarker(_ mapview.Handle, coords workout.Coords, opts mapview.PopupOptions) (mapview.MarkerRef, error) {
	m.markers++
	ref := mapview.MarkerRef(fmt.Sprintf("marker-%d", m.markers))
	m.p.Printf("📍 %s at %s (%s): %s", ref, coords, opts.ClassName, opts.Content)
	return ref, nil
}

func (m *Map) SetView(_ mapview.Handle, coords workout.Coords, zoom int, opts mapview.ViewOptions) error {
	verb := "jump"
	if opts.Animate {
		verb = "pan"
	}
	m.p.Printf("🧭 %s to %s, zoom %d", verb, coords, zoom)
	return nil
}

// List prints rendered workout entries.
type List struct {
	p *Printer
}

func NewList(p *Printer) *List {
	return &List{p: p}
}

func (l *List) RenderEntry(e app.Entry) {
	l.p.Printf("%s", e)
}

type Notices struct {
	p *Printer
}

func NewNotices(p *Printer) *Notices {
	return &Notices{p: p}
}

func (n *Notices) Notify(msg string) {
	n.p.Printf("⚠️  %s", msg)
}

// FormView tracks which form rows are shown and prompts for the visible ones.
type FormView struct {
	p       *Printer
	visible bool
	rows    map[form.Field]bool
}

func NewFormView(p *Printer) *FormView {
	return &FormView{
		p:    p,
		rows: map[form.Field]bool{},
	}
}

func (v *FormView) Show() {
	v.visible = true
	v.p.Printf("📝 new workout: %s", v.prompt())
}

func (v *FormView) Hide() {
	v.visible = false
}

func (v *FormView) RestoreLayout() {}

func (v *FormView) SetRowVisible(f form.Field, visible bool) {
	v.rows[f] = visible
	if v.visible && visible {
		v.p.Printf("📝 %s", v.prompt())
	}
}

func (v *FormView) Clear(form.Field) {}

func (v *FormView) Focus(form.Field) {}

func (v *FormView) Visible() bool {
	return v.visible
}

func (v *FormView) prompt() string {
	extra := []string{}
	if v.rows[form.FieldCadence] {
		extra = append(extra, "CADENCE")
	}
	if v.rows[form.FieldElevation] {
		extra = append(extra, "ELEVATION")
	}
	return "submit DISTANCE DURATION " + strings.Join(extra, " ")
}
