//go:build !cgo

package host

import (
	"errors"

	"github.com/gogpu/panzoom"
	"github.com/gogpu/panzoom/minimap"
	"github.com/gogpu/panzoom/render"
)

func RunWindow(_ *Driver, _ *minimap.Projector, _ *render.Renderer, _ panzoom.Config) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
