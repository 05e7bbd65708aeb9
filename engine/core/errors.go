package core

import (
	"errors"
)

var (
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrConfigNotFound   = errors.New("configuration file not found")
	ErrValidationFailed = errors.New("triangulation input failed validation")
	ErrNotValidated     = errors.New("triangulate called before a successful validate")
	ErrUnsupportedFace  = errors.New("face cannot be triangulated")
	ErrQueueEmpty       = errors.New("queue is empty")
	ErrInvalidStage     = errors.New("operation not allowed in the current engine stage")
)
