package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/mapty/internal/form"
	"github.com/2beens/mapty/internal/kv"
	"github.com/2beens/mapty/internal/mapview"
	"github.com/2beens/mapty/internal/telemetry/metrics"
	"github.com/2beens/mapty/internal/workout"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

// PersistenceKey is the key the workouts snapshot is stored under.
const PersistenceKey = "workouts"

const (
	noticeLocationUnavailable = "Could not get your position"
	noticeInvalidInput        = "Inputs have to be positive numbers!"
)

var (
	ErrLocationUnavailable = errors.New("location unavailable")
	ErrFormNotOpen         = errors.New("workout form is not open")
	ErrAlreadyStarted      = errors.New("app already started")
)

type Params struct {
	Map         mapview.Map
	Geolocator  Geolocator
	Persistence kv.Store
	Renderer    Renderer
	Notifier    Notifier
	FormView    form.View
	Loop        Loop
	// Factory builds new records; workout.DefaultFactory() when nil.
	Factory *workout.Factory
	// Metrics go to a private registry when nil.
	Metrics *metrics.Manager

	MapContainer   string
	ZoomLevel      int
	PanDuration    time.Duration
	FormResetDelay time.Duration
}

// App ties the map, the form and the workouts together. Every method must be
// called from the Loop, never concurrently.
type App struct {
	mapCtrl     *mapview.Controller
	formCtrl    *form.Controller
	geolocator  Geolocator
	persistence kv.Store
	renderer    Renderer
	notifier    Notifier
	loop        Loop
	factory     *workout.Factory
	metrics     *metrics.Manager
	zoomLevel   int

	store        *workout.Store
	state        State
	started      bool
	clickCoords  workout.Coords
	lastLocation error
}

func New(params Params) *App {
	factory := params.Factory
	if factory == nil {
		factory = workout.DefaultFactory()
	}
	metricsManager := params.Metrics
	if metricsManager == nil {
		metricsManager = metrics.NewManager("mapty", "app", prometheus.NewRegistry())
	}

	a := &App{
		mapCtrl:     mapview.NewController(params.Map, params.MapContainer, params.PanDuration),
		formCtrl:    form.NewController(params.FormView, params.Loop, params.FormResetDelay),
		geolocator:  params.Geolocator,
		persistence: params.Persistence,
		renderer:    params.Renderer,
		notifier:    params.Notifier,
		loop:        params.Loop,
		factory:     factory,
		metrics:     metricsManager,
		zoomLevel:   params.ZoomLevel,
		store:       workout.NewStore(),
		state:       AwaitingLocation,
	}
	a.mapCtrl.OnMapClick(a.onMapClick)

	return a
}

// Start restores saved workouts, renders them into the list and asks for the
// user position. The map is set up once the position arrives on the Loop.
func (a *App) Start(ctx context.Context) error {
	if a.started {
		return ErrAlreadyStarted
	}
	a.started = true

	a.restore(ctx)
	for _, r := range a.store.List() {
		a.renderer.RenderEntry(EntryFor(r))
	}

	a.geolocator.CurrentPosition(
		func(coords workout.Coords) {
			a.loop.Post(func() { a.onLocation(coords) })
		},
		func(err error) {
			a.loop.Post(func() { a.onLocationFailure(err) })
		},
	)

	return nil
}

func (a *App) restore(ctx context.Context) {
	snapshot, err := a.persistence.Get(ctx, PersistenceKey)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			log.Errorf("read workouts snapshot: %s", err)
			a.metrics.CounterSnapshotRestoreFailures.Inc()
		}
		return
	}

	store, err := workout.Deserialize(snapshot)
	if err != nil {
		log.Warnf("restore workouts: %s", err)
		a.metrics.CounterSnapshotRestoreFailures.Inc()
	}
	a.store = store
	a.factory.Observe(store.List()...)
	a.metrics.GaugeWorkoutsStored.Set(float64(store.Len()))
	log.Infof("restored %d workouts", store.Len())
}

func (a *App) onLocation(coords workout.Coords) {
	if a.mapCtrl.Ready() {
		log.Debugf("location %s arrived after map init, ignored", coords)
		return
	}
	if err := a.mapCtrl.Initialize(coords, a.zoomLevel); err != nil {
		log.Errorf("init map at %s: %s", coords, err)
		a.onLocationFailure(err)
		return
	}

	for _, r := range a.store.List() {
		a.placeMarker(r)
	}
	a.state = MapReady
	log.Infof("map ready at %s", coords)
}

func (a *App) onLocationFailure(err error) {
	a.lastLocation = fmt.Errorf("%w: %w", ErrLocationUnavailable, err)
	log.Warnf("get position: %s", err)
	a.metrics.CounterLocationFailures.Inc()
	a.notifier.Notify(noticeLocationUnavailable)
}

// LocationErr returns why the map could not be set up, if it could not.
func (a *App) LocationErr() error {
	return a.lastLocation
}

func (a *App) onMapClick(coords workout.Coords) {
	if a.state == AwaitingLocation {
		return
	}
	a.clickCoords = coords
	a.formCtrl.Open()
	a.state = FormOpen
	log.Debugf("form opened for %s", coords)
}

// ChangeType switches the form between the running and cycling fields.
func (a *App) ChangeType(t workout.Type) {
	a.formCtrl.ToggleFieldsForType(t)
}

// Submit turns the form input into a workout at the last clicked position.
// Invalid input is reported to the user and leaves everything as it was.
func (a *App) Submit(ctx context.Context, input form.Input) error {
	if a.state != FormOpen {
		return ErrFormNotOpen
	}

	t := a.formCtrl.Type()
	if input.Type != "" {
		parsed, err := workout.ParseType(input.Type)
		if err != nil {
			return a.rejectInput(err)
		}
		t = parsed
	}

	values, err := a.formCtrl.Validate(t, input.Distance, input.Duration, input.Extra(t))
	if err != nil {
		return a.rejectInput(err)
	}

	record, err := a.factory.New(values.Type, values.Distance, values.Duration, a.clickCoords, values.Extra)
	if err != nil {
		return a.rejectInput(err)
	}
	if err := a.store.Add(record); err != nil {
		return fmt.Errorf("add workout: %w", err)
	}
	a.metrics.CounterWorkoutsAdded.WithLabelValues(record.Type().String()).Inc()
	a.metrics.GaugeWorkoutsStored.Set(float64(a.store.Len()))
	log.Infof("workout added: %s", record)

	a.renderer.RenderEntry(EntryFor(record))
	a.placeMarker(record)
	a.persist(ctx)

	a.formCtrl.Reset()
	a.state = AwaitingClick

	return nil
}

func (a *App) rejectInput(err error) error {
	log.Debugf("workout input rejected: %s", err)
	a.metrics.CounterValidationFailures.Inc()
	a.notifier.Notify(noticeInvalidInput)
	return err
}

func (a *App) placeMarker(r workout.Record) {
	if err := a.mapCtrl.PlaceMarker(r.Coords(), r.Description(), r.Type().PopupClass()); err != nil {
		log.Errorf("place marker for [%s]: %s", r.ID(), err)
	}
}

func (a *App) persist(ctx context.Context) {
	start := time.Now()
	defer func() {
		a.metrics.HistPersistDuration.Observe(time.Since(start).Seconds())
	}()

	snapshot, err := a.store.Serialize()
	if err != nil {
		log.Errorf("serialize workouts: %s", err)
		a.metrics.CounterPersistFailures.Inc()
		return
	}
	if err := a.persistence.Set(ctx, PersistenceKey, snapshot); err != nil {
		log.Errorf("persist workouts: %s", err)
		a.metrics.CounterPersistFailures.Inc()
	}
}

// ActivateEntry moves the map to the workout with the given id. Unknown ids
// and activation before the map is ready are ignored.
func (a *App) ActivateEntry(id string) error {
	if !a.mapCtrl.Ready() {
		a.metrics.CounterEntryActivations.WithLabelValues("map_not_ready").Inc()
		return nil
	}

	record, ok := a.store.FindByID(id)
	if !ok {
		log.Debugf("activate entry [%s]: %s", id, workout.ErrNotFound)
		a.metrics.CounterEntryActivations.WithLabelValues("miss").Inc()
		return nil
	}

	a.metrics.CounterEntryActivations.WithLabelValues("hit").Inc()
	return a.mapCtrl.PanTo(record.Coords(), a.zoomLevel)
}

func (a *App) State() State {
	return a.state
}

// Workouts returns the stored workouts in creation order.
func (a *App) Workouts() []workout.Record {
	return a.store.List()
}

// FormType is the workout type the form currently shows fields for.
func (a *App) FormType() workout.Type {
	return a.formCtrl.Type()
}
