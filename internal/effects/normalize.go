package effects

import "math"

// Peak returns the largest absolute sample value across all channels.
func Peak(channels ...[]float64) float64 {
	var peak float64
	for _, ch := range channels {
		for _, s := range ch {
			if a := math.Abs(s); a > peak {
				peak = a
			}
		}
	}
	return peak
}

// Normalize scales every channel by the same factor so the combined peak
// equals target. It returns the applied scale; silent input is left as is
// and reports a scale of 1.
func Normalize(target float64, channels ...[]float64) float64 {
	peak := Peak(channels...)
	if peak == 0 {
		return 1
	}
	scale := target / peak
	for _, ch := range channels {
		for i := range ch {
			ch[i] *= scale
		}
	}
	return scale
}
