//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Tidies the module and builds the example binary into bin/.
func (Build) Binary() error {
	if err := goTidy(); err != nil {
		return err
	}
	return goCmd([]string{"build", "-o", binaryPath, "."})
}

// Runs go vet over every package.
func (Build) Lint() error {
	return goCmd([]string{"vet", "./..."})
}
