package color

import "math"

// OkLab -> LMS' coefficients (Ottosson, 2020)
const (
	lmsLA = 0.3963377774
	lmsLB = 0.2158037573
	lmsMA = -0.1055613458
	lmsMB = -0.0638541728
	lmsSA = -0.0894841775
	lmsSB = -1.2914855480
)

// LMS -> linear sRGB matrix
var lmsToLinear = [3][3]float64{
	{4.0767416621, -3.3077115913, 0.2309699292},
	{-1.2684380046, 2.6097574011, -0.3413193965},
	{-0.0041960863, -0.7034186147, 1.7076147010},
}

// NormalizeHue maps any finite angle in degrees into [0,360)
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// oklab converts the cylindrical form to rectangular OkLab
func oklab(p Perceptual) (l, a, b float64) {
	rad := NormalizeHue(p.H) * math.Pi / 180
	return p.L, p.C * math.Cos(rad), p.C * math.Sin(rad)
}

func oklabToLinear(l, a, b float64) (float64, float64, float64) {
	lp := l + lmsLA*a + lmsLB*b
	mp := l + lmsMA*a + lmsMB*b
	sp := l + lmsSA*a + lmsSB*b

	lms := [3]float64{lp * lp * lp, mp * mp * mp, sp * sp * sp}

	var out [3]float64
	for i, row := range lmsToLinear {
		out[i] = row[0]*lms[0] + row[1]*lms[1] + row[2]*lms[2]
	}
	return out[0], out[1], out[2]
}
