package sample

import (
	"fmt"
	"math"

	"github.com/alexozer/approx"
	"github.com/ungerik/go3d/float64/vec3"
)

// Revolved samples the surface swept by rotating a profile polyline a full
// turn around an axis. U runs along the profile, parameterized by chord
// length; V is the rotation angle in [0, 2π), closed with period end 2π.
//
// **params**
// + profile points
// + center of the rotation axis
// + direction of the rotation axis
// + number of angular sections
//
// **returns**
// + a SampleGrid closed in V
func Revolved(profile []vec3.T, center, axis *vec3.T, sections int) (*approx.SampleGrid, error) {
	uParams, err := ChordLength(profile)
	if err != nil {
		return nil, fmt.Errorf("revolve profile: %w", err)
	}
	if axis.Length() == 0 {
		return nil, fmt.Errorf("revolve around a zero axis")
	}
	if sections < 2 {
		return nil, fmt.Errorf("revolve with %d sections", sections)
	}

	k := axis.Normalized()
	vParams := make([]float64, sections)
	for j := range vParams {
		vParams[j] = 2 * math.Pi * float64(j) / float64(sections)
	}

	pts := make([][]vec3.T, len(profile))
	for i := range profile {
		pts[i] = make([]vec3.T, sections)
		rel := vec3.Sub(&profile[i], center)
		for j, theta := range vParams {
			rotated := rotate(&rel, &k, theta)
			pts[i][j] = vec3.Add(center, &rotated)
		}
	}

	return approx.NewSampleGrid(pts, uParams, vParams, false, true, approx.WithVPeriodEnd(2*math.Pi))
}

// rotate turns p by theta around the unit axis k (Rodrigues' formula).
func rotate(p, k *vec3.T, theta float64) vec3.T {
	sin, cos := math.Sincos(theta)
	kxp := vec3.Cross(k, p)
	along := k.Scaled(vec3.Dot(k, p) * (1 - cos))

	r := p.Scaled(cos)
	kxp.Scale(sin)
	r.Add(&kxp)
	r.Add(&along)
	return r
}

// Cylinder samples a cylinder of the given radius around the z axis, from
// z = 0 to z = height, with uN rings of vN samples.
func Cylinder(radius, height float64, uN, vN int) (*approx.SampleGrid, error) {
	profile := make([]vec3.T, uN)
	for i, z := range Linspace(0, height, uN) {
		profile[i] = vec3.T{radius, 0, z}
	}

	return Revolved(profile, &vec3.Zero, &vec3.UnitZ, vN)
}
