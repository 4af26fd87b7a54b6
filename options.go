package panzoom

// ControllerOption configures a Controller during creation.
//
// Example:
//
//	// Centered canvas (default)
//	ctrl, err := panzoom.NewController(cfg)
//
//	// Start from a known transform and observe it from the first change
//	ctrl, err := panzoom.NewController(cfg,
//	    panzoom.WithInitialTransform(panzoom.IdentityTransform()),
//	    panzoom.WithObserver(onChange))
type ControllerOption func(*controllerOptions)

type controllerOptions struct {
	initial   *Transform
	observers []Observer
}

func defaultControllerOptions() controllerOptions {
	return controllerOptions{
		initial: nil, // centered on the canvas
	}
}

// WithInitialTransform replaces the centered starting transform. The scale
// is taken as-is, like SetPanAndScale.
func WithInitialTransform(t Transform) ControllerOption {
	return func(o *controllerOptions) {
		o.initial = &t
	}
}

// WithObserver subscribes fn before the controller is returned.
func WithObserver(fn Observer) ControllerOption {
	return func(o *controllerOptions) {
		o.observers = append(o.observers, fn)
	}
}

// Options are the runtime toggles accepted by Controller.SetOptions.
type Options struct {
	// DisablePan refuses drag-to-pan gestures. Programmatic Pan and
	// SetPanAndScale calls are unaffected.
	DisablePan bool
}
