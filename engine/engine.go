package engine

import (
	"fmt"

	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/core"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/delaunay"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/exact"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/math"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/mesh"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/meshretri"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete and jobs can be submitted
	EngineStageInitialized
	// Engine is currently running a job
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
	// Engine has shut down and accepts no more jobs
	EngineStageShutdown
)

func (s Stage) String() string {
	switch s {
	case EngineStageUninitialized:
		return "uninitialized"
	case EngineStageInitializing:
		return "initializing"
	case EngineStageInitialized:
		return "initialized"
	case EngineStageRunning:
		return "running"
	case EngineStageShuttingDown:
		return "shutting down"
	case EngineStageShutdown:
		return "shut down"
	}
	return fmt.Sprintf("stage(%d)", uint8(s))
}

// Engine runs triangulation jobs with a shared configuration. Jobs run one
// at a time, synchronously, and are timed with the engine clock.
type Engine struct {
	currentStage Stage
	config       *core.Config
	clock        *core.Clock
}

// New returns an engine for cfg. A nil cfg selects the defaults.
func New(cfg *core.Config) (*Engine, error) {
	if cfg == nil {
		cfg = core.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		core.LogError(err.Error())
		return nil, err
	}
	return &Engine{
		currentStage: EngineStageUninitialized,
		config:       cfg,
		clock:        core.NewClock(),
	}, nil
}

func (e *Engine) Initialize() error {
	if err := e.expectStage(EngineStageUninitialized); err != nil {
		return err
	}
	e.currentStage = EngineStageInitializing

	if err := core.SetLogLevel(e.config.Log.Level); err != nil {
		e.currentStage = EngineStageUninitialized
		return err
	}
	// initialize the error bounds of the geometric predicates
	exact.Initialize()

	e.currentStage = EngineStageInitialized
	core.LogDebug("engine initialized, predicate epsilon %g", exact.Epsilon())
	return nil
}

func (e *Engine) Stage() Stage {
	return e.currentStage
}

func (e *Engine) Config() *core.Config {
	return e.config
}

func (e *Engine) expectStage(want Stage) error {
	if e.currentStage != want {
		return fmt.Errorf("%w: engine is %s, want %s", core.ErrInvalidStage, e.currentStage, want)
	}
	return nil
}

// run executes job in the running stage and logs how long it took.
func (e *Engine) run(name string, job func() error) error {
	if err := e.expectStage(EngineStageInitialized); err != nil {
		return err
	}
	e.currentStage = EngineStageRunning
	defer func() { e.currentStage = EngineStageInitialized }()

	e.clock.Start()
	err := job()
	e.clock.Stop()
	if err != nil {
		core.LogError("%s failed after %s: %s", name, e.clock.Elapsed(), err)
		return err
	}
	core.LogInfo("%s finished in %s", name, e.clock.Elapsed())
	return nil
}

// TriangulateMesh replaces every face of m with more than three vertices by
// triangles and returns how many faces were replaced.
func (e *Engine) TriangulateMesh(m *mesh.Mesh) (int, error) {
	count := 0
	err := e.run("triangulate mesh", func() error {
		var err error
		count, err = mesh.NewTriangulator(m, e.config.Delaunay).Triangulate()
		return err
	})
	return count, err
}

// NewRetriangulator returns a retriangulator for m that uses the engine
// configuration.
func (e *Engine) NewRetriangulator(m *mesh.Mesh) *meshretri.Retriangulator {
	return meshretri.NewRetriangulator(m, e.config)
}

// RetriangulateMesh splits the faces of the retriangulator's mesh along the
// segments queued on it.
func (e *Engine) RetriangulateMesh(r *meshretri.Retriangulator) error {
	return e.run("retriangulate mesh", r.Retriangulate)
}

// TriangulatePolygons computes the constrained Delaunay triangulation of the
// polygon interiors. Input that fails validation is returned as an error
// wrapping core.ErrValidationFailed.
func (e *Engine) TriangulatePolygons(points []math.Vec2, polygons []delaunay.Polygon, extraEdges []delaunay.IndexEdge) (*delaunay.PolygonTriangulator, error) {
	pt := delaunay.NewPolygonTriangulator(points, polygons, extraEdges, e.config.Delaunay)
	err := e.run("triangulate polygons", func() error {
		if ok, details := pt.Validate(); !ok {
			return fmt.Errorf("%w: %s", core.ErrValidationFailed, details)
		}
		if err := pt.Triangulate(); err != nil {
			return err
		}
		core.LogDebug("%s", pt.Statistics())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pt, nil
}

func (e *Engine) Shutdown() error {
	if err := e.expectStage(EngineStageInitialized); err != nil {
		return err
	}
	e.currentStage = EngineStageShuttingDown
	core.LogDebug("engine shutting down")
	e.currentStage = EngineStageShutdown
	return nil
}
