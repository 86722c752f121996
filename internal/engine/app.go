package engine

import (
	"errors"
	"fmt"

	"flycam/internal/gizmo"

	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

var (
	// ErrAlreadyRegistered is returned when a plugin is added twice.
	ErrAlreadyRegistered = errors.New("plugin already registered")
	// ErrMissingResource is returned when a system asks for a resource nobody initialised.
	ErrMissingResource = errors.New("missing resource")
)

// Phase is a stage of the frame. Phases run in declaration order.
type Phase int

const (
	PreUpdate Phase = iota
	Update

	phaseCount
)

func (p Phase) String() string {
	switch p {
	case PreUpdate:
		return "pre_update"
	case Update:
		return "update"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// SystemFunc runs once per frame in its phase.
type SystemFunc func(app *App) error

type system struct {
	name string
	run  SystemFunc
}

// Plugin groups the resources and systems of one feature.
type Plugin interface {
	Name() string
	Build(app *App) error
}

// App owns the world and runs the frame schedule.
type App struct {
	World  donburi.World
	Clock  *Clock
	Gizmos *gizmo.Gizmos
	Logger *zap.Logger

	systems [phaseCount][]system
	plugins map[string]struct{}
}

// NewApp creates an app with an empty world.
func NewApp(clock *Clock, gizmos *gizmo.Gizmos, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		World:   donburi.NewWorld(),
		Clock:   clock,
		Gizmos:  gizmos,
		Logger:  logger,
		plugins: make(map[string]struct{}),
	}
}

// AddPlugin builds p into the app. A plugin name may only be added once.
func (a *App) AddPlugin(p Plugin) error {
	if _, ok := a.plugins[p.Name()]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, p.Name())
	}
	if err := p.Build(a); err != nil {
		return fmt.Errorf("build plugin %s: %w", p.Name(), err)
	}
	a.plugins[p.Name()] = struct{}{}
	a.Logger.Info("plugin registered", zap.String("plugin", p.Name()))
	return nil
}

// AddSystem appends fn to phase. Systems in a phase run in insertion order.
func (a *App) AddSystem(phase Phase, name string, fn SystemFunc) *App {
	a.systems[phase] = append(a.systems[phase], system{name: name, run: fn})
	return a
}

// Systems lists the system names of a phase in run order.
func (a *App) Systems(phase Phase) []string {
	names := make([]string, 0, len(a.systems[phase]))
	for _, s := range a.systems[phase] {
		names = append(names, s.name)
	}
	return names
}

// Update runs one frame: tick the clock, reset the gizmo buffer, then run
// every phase in order. The first failing system aborts the frame.
func (a *App) Update() error {
	a.Clock.Tick()
	if a.Gizmos != nil {
		a.Gizmos.Clear()
	}
	for phase := Phase(0); phase < phaseCount; phase++ {
		for _, s := range a.systems[phase] {
			if err := s.run(a); err != nil {
				return fmt.Errorf("%s/%s: %w", phase, s.name, err)
			}
		}
	}
	return nil
}
