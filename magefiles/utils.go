//go:build mage

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/magefile/mage/mg"
)

const binaryPath = "bin/discontinuity-mesh"

type cmdOptions struct {
	args   []string
	dir    string
	env    []string
	stream bool
}

type cmdOption func(*cmdOptions)

func withArgs(args ...string) cmdOption {
	return func(o *cmdOptions) {
		o.args = args
	}
}

func withDir(dir string) cmdOption {
	return func(o *cmdOptions) {
		o.dir = dir
	}
}

// withEnv adds KEY=VALUE pairs on top of the current environment.
func withEnv(env ...string) cmdOption {
	return func(o *cmdOptions) {
		o.env = append(o.env, env...)
	}
}

func withStream() cmdOption {
	return func(o *cmdOptions) {
		o.stream = true
	}
}

func executeCmd(command string, options ...cmdOption) (string, error) {
	opts := &cmdOptions{}
	for _, o := range options {
		o(opts)
	}

	line := strings.TrimSpace(command + " " + strings.Join(opts.args, " "))
	if opts.dir != "" {
		fmt.Printf("==> (%s) %s\n", opts.dir, line)
	} else {
		fmt.Printf("==> %s\n", line)
	}
	cmd := exec.Command(command, opts.args...)
	cmd.Dir = opts.dir
	if len(opts.env) > 0 {
		cmd.Env = append(os.Environ(), opts.env...)
	}

	streamOutput := mg.Verbose() || opts.stream

	var b bytes.Buffer
	if streamOutput {
		cmd.Stdout = io.MultiWriter(&b, os.Stdout)
		cmd.Stderr = io.MultiWriter(&b, os.Stderr)
	} else {
		cmd.Stdout = &b
		cmd.Stderr = &b
	}
	start := time.Now()
	if err := cmd.Run(); err != nil {
		if !streamOutput {
			fmt.Fprintf(os.Stderr, "--- output of %q:\n%s", line, b.String())
		}
		return "", fmt.Errorf("%q failed after %s: %w", line, time.Since(start).Round(time.Millisecond), err)
	}
	if mg.Verbose() {
		fmt.Printf("<== %s (%s)\n", line, time.Since(start).Round(time.Millisecond))
	}
	return b.String(), nil
}

// goCmd runs a go subcommand with its output streamed to the terminal.
func goCmd(args []string, options ...cmdOption) error {
	options = append(options, withArgs(args...), withStream())
	_, err := executeCmd("go", options...)
	return err
}

func goTidy() error {
	if _, err := executeCmd("go", withArgs("mod", "tidy")); err != nil {
		return fmt.Errorf("go mod tidy: %w", err)
	}
	return nil
}
