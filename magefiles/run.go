//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Triangulates the default testbed shape and prints it as GeoJSON.
func (Run) Testbed() error {
	fmt.Println("Run testbed...")
	return goCmd([]string{"run", "main.go"})
}

// Triangulates a named testbed shape, e.g. "5-pointed star".
func (Run) Shape(name string) error {
	return goCmd([]string{"run", "main.go", "-shape", name})
}

// Triangulates the testbed cube mesh.
func (Run) Cube() error {
	return goCmd([]string{"run", "main.go", "-cube"})
}
