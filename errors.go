package panzoom

import "errors"

var (
	// ErrNilController is returned when a component that observes the
	// viewport is constructed before (or without) its Controller.
	ErrNilController = errors.New("panzoom: nil controller")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("panzoom: invalid config")
)
