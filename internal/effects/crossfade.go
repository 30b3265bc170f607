package effects

// LoopCrossfade blends the last fadeLen samples into the first fadeLen so
// the sequence repeats without a seam:
//
//	x[i] = x[i]·(i/fadeLen) + tail[i]·(1 - i/fadeLen),  0 <= i < fadeLen
//
// where tail is a copy of x[N-fadeLen:] taken before any head sample is
// rewritten. Samples from fadeLen onward are not modified. fadeLen is
// clamped to len(x).
func LoopCrossfade(x []float64, fadeLen int) {
	n := len(x)
	if fadeLen > n {
		fadeLen = n
	}
	if fadeLen <= 0 {
		return
	}
	tail := make([]float64, fadeLen)
	copy(tail, x[n-fadeLen:])
	for i := 0; i < fadeLen; i++ {
		mix := float64(i) / float64(fadeLen)
		x[i] = x[i]*mix + tail[i]*(1.0-mix)
	}
}
