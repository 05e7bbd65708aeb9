/*
This is an example application that uses the engine package to
triangulate the testbed shapes and print the result as GeoJSON
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/core"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/engine/delaunay"
	"github.com/drewolbrich/DiscontinuityMesh-sub003/testbed"
)

type options struct {
	shape string
	cube  bool
}

func main() {
	configPath := flag.String("config", "", "path to a TOML configuration file")
	watch := flag.Bool("watch", false, "run again whenever the configuration file changes")
	opts := options{}
	flag.StringVar(&opts.shape, "shape", "square with hole", "testbed shape to triangulate")
	flag.BoolVar(&opts.cube, "cube", false, "triangulate the testbed cube mesh instead of a shape")
	flag.Parse()

	cfg := core.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = core.LoadConfig(*configPath); err != nil {
			core.LogFatal("could not load configuration: %s", err)
		}
	}
	if err := run(cfg, opts); err != nil {
		core.LogFatal("%s", err)
	}
	if !*watch {
		return
	}
	if *configPath == "" {
		core.LogFatal("-watch needs -config")
	}

	cw, err := core.NewConfigWatcher(*configPath)
	if err != nil {
		core.LogFatal("could not watch %s: %s", *configPath, err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	go func() {
		<-sigCh
		_ = cw.Close()
	}()

	for cfg := range cw.Configs() {
		if err := run(cfg, opts); err != nil {
			core.LogError("%s", err)
		}
	}
}

// run triangulates the selected testbed input with a fresh engine.
func run(cfg *core.Config, opts options) error {
	eng, err := engine.New(cfg)
	if err != nil {
		return err
	}
	if err := eng.Initialize(); err != nil {
		return err
	}
	defer func() { _ = eng.Shutdown() }()

	if opts.cube {
		msh := testbed.CubeMesh(1)
		n, err := eng.TriangulateMesh(msh)
		if err != nil {
			return fmt.Errorf("cube triangulation failed: %w", err)
		}
		fmt.Printf("triangulated %d faces into %d triangles\n", n, msh.FaceCount())
		return nil
	}

	var shape *testbed.Shape
	for _, s := range testbed.Shapes() {
		if strings.EqualFold(s.Name, opts.shape) {
			shape = &s
			break
		}
	}
	if shape == nil {
		return fmt.Errorf("unknown shape %q", opts.shape)
	}

	pt, err := eng.TriangulatePolygons(shape.Points, shape.Polygons, shape.ExtraEdges)
	if err != nil {
		return fmt.Errorf("%s: %w", shape.Name, err)
	}
	constraints := len(shape.ExtraEdges)
	for _, p := range shape.Polygons {
		constraints += len(p.Outline)
		for _, h := range p.Holes {
			constraints += len(h)
		}
	}
	out, err := delaunay.TriangulationGeoJSON(pt.Points(), pt.Edges(), pt.Triangles(), constraints)
	if err != nil {
		return fmt.Errorf("could not encode triangulation: %w", err)
	}
	_, err = os.Stdout.Write(append(out, '\n'))
	return err
}
