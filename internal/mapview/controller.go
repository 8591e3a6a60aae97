package mapview

import (
	"errors"
	"fmt"
	"time"

	"github.com/2beens/mapty/internal/workout"

	log "github.com/sirupsen/logrus"
)

var (
	ErrNotInitialized     = errors.New("map not initialized")
	ErrAlreadyInitialized = errors.New("map already initialized")
)

const (
	popupMaxWidth  = 250
	popupMaxHeight = 150
)

// Controller bridges the map capability and the app. It must be initialized
// (once the user position is known) before markers can be placed or the view moved.
type Controller struct {
	m           Map
	container   string
	panDuration time.Duration

	handle       Handle
	ready        bool
	clickHandler func(workout.Coords)
	markers      []MarkerRef
}

func NewController(m Map, container string, panDuration time.Duration) *Controller {
	return &Controller{
		m:           m,
		container:   container,
		panDuration: panDuration,
	}
}

// OnMapClick sets the handler for map clicks. It is handed over to the
// map capability on Initialize, so it has to be set before that.
func (c *Controller) OnMapClick(handler func(workout.Coords)) {
	c.clickHandler = handler
}

func (c *Controller) Initialize(center workout.Coords, zoom int) error {
	if c.ready {
		return ErrAlreadyInitialized
	}

	handle, err := c.m.Initialize(c.container, center, zoom)
	if err != nil {
		return fmt.Errorf("initialize map: %w", err)
	}
	c.handle = handle
	c.ready = true

	c.m.OnClick(c.handle, c.dispatchClick)
	log.Debugf("map [%s] initialized at %s, zoom %d", c.handle, center, zoom)

	return nil
}

func (c *Controller) dispatchClick(coords workout.Coords) {
	if c.clickHandler == nil {
		log.Tracef("map click at %s ignored, no handler", coords)
		return
	}
	c.clickHandler(coords)
}

func (c *Controller) Ready() bool {
	return c.ready
}

// PlaceMarker adds a marker with an already opened popup showing popupText.
func (c *Controller) PlaceMarker(coords workout.Coords, popupText, styleClass string) error {
	if !c.ready {
		return ErrNotInitialized
	}

	ref, err := c.m.AddMarker(c.handle, coords, PopupOptions{
		MaxWidth:     popupMaxWidth,
		MaxHeight:    popupMaxHeight,
		AutoClose:    false,
		CloseOnClick: false,
		ClassName:    styleClass,
		Content:      popupText,
	})
	if err != nil {
		return fmt.Errorf("add marker at %s: %w", coords, err)
	}

	c.markers = append(c.markers, ref)
	return nil
}

// PanTo moves the view to coords with an animated transition.
func (c *Controller) PanTo(coords workout.Coords, zoom int) error {
	if !c.ready {
		return ErrNotInitialized
	}

	if err := c.m.SetView(c.handle, coords, zoom, ViewOptions{
		Animate:     true,
		PanDuration: c.panDuration,
	}); err != nil {
		return fmt.Errorf("set view to %s: %w", coords, err)
	}
	return nil
}

func (c *Controller) MarkersCount() int {
	return len(c.markers)
}
