package renderer

import "github.com/df07/go-grid-raytracer/pkg/core"

const (
	// TargetLuminance is the exposed value the scene's mean luminance maps to
	TargetLuminance = 0.5
	// RolloffKnee is k in the highlight curve x/(x+k)
	RolloffKnee = 0.5
)

// Exposure returns the multiplier that maps mean to TargetLuminance.
// A black or invalid mean leaves the image unscaled.
func Exposure(mean float64) float64 {
	if !(mean > 0) {
		return 1.0
	}
	return TargetLuminance / mean
}

// rolloff compresses highlights and clamps to [0, 1]
func rolloff(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	return min(1.0, x/(x+RolloffKnee))
}

// ToneMap exposes a linear radiance value, compresses it and packs it
// as 0xRRGGBB
func ToneMap(c core.Vec3, exposure float64) uint32 {
	exposed := c.Multiply(exposure)
	return PackRGB(core.NewVec3(
		rolloff(exposed.X),
		rolloff(exposed.Y),
		rolloff(exposed.Z),
	))
}

// PackRGB clamps each channel to [0, 1] and packs it into 8 bits,
// red highest, with no alpha
func PackRGB(c core.Vec3) uint32 {
	c = c.Clamp(0, 1)
	r := uint32(c.X * 255)
	g := uint32(c.Y * 255)
	b := uint32(c.Z * 255)
	return r<<16 | g<<8 | b
}

// UnpackRGB splits a packed pixel into its channels
func UnpackRGB(p uint32) (r, g, b uint8) {
	return uint8(p >> 16), uint8(p >> 8), uint8(p)
}
