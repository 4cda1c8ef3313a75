//go:build tinygo || !cgo

package sceneaux

import (
	"errors"

	"github.com/axisgl/gscene"
)

func ui(s *gscene.Scene, cfg UIConfig) error {
	return errors.New("require cgo for UI rendering")
}
