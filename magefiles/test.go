//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs every test in the module.
func (Test) All() error {
	return goCmd([]string{"test", "./..."})
}

// Runs every test with the race detector enabled.
func (Test) Race() error {
	return goCmd([]string{"test", "-race", "./..."}, withEnv("CGO_ENABLED=1"))
}

// Runs the tests and benchmarks of a single engine package, e.g. delaunay.
func (Test) Package(name string) error {
	return goCmd([]string{"test", "-bench", ".", "./..."}, withDir("engine/"+name))
}
