package sample

import (
	"fmt"

	"github.com/alexozer/approx"
	"github.com/ungerik/go3d/float64/mat4"
	"github.com/ungerik/go3d/float64/vec3"
)

// Swept samples the surface made by translating a profile polyline along a
// rail polyline, so that the profile's copy for rail point i is moved by
// rail[i]-rail[0]. U follows the rail and V the profile, both by chord
// length.
func Swept(profile, rail []vec3.T) (*approx.SampleGrid, error) {
	vParams, err := ChordLength(profile)
	if err != nil {
		return nil, fmt.Errorf("sweep profile: %w", err)
	}
	uParams, err := ChordLength(rail)
	if err != nil {
		return nil, fmt.Errorf("sweep rail: %w", err)
	}

	pts := make([][]vec3.T, len(rail))
	for i := range rail {
		offset := vec3.Sub(&rail[i], &rail[0])
		mat := mat4.Ident
		mat.SetTranslation(&offset)

		pts[i] = make([]vec3.T, len(profile))
		for j := range profile {
			pts[i][j] = mat.MulVec3(&profile[j])
		}
	}

	return approx.NewSampleGrid(pts, uParams, vParams, false, false)
}
