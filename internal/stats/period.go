package stats

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// DominantPeriod estimates the strongest periodic component of xs, in
// samples. The mean is removed first so the DC bin never wins. It returns 0
// when xs is too short or flat.
func DominantPeriod(xs []float64) float64 {
	n := len(xs)
	if n < 4 {
		return 0
	}
	var mean float64
	for _, v := range xs {
		mean += v
	}
	mean /= float64(n)
	centred := make([]float64, n)
	for i, v := range xs {
		centred[i] = v - mean
	}

	spectrum := fft.FFTReal(centred)
	best, bestMag := 0, 0.0
	for k := 1; k <= n/2; k++ {
		if mag := cmplx.Abs(spectrum[k]); mag > bestMag {
			best, bestMag = k, mag
		}
	}
	if best == 0 || bestMag < 1e-9 {
		return 0
	}
	return float64(n) / float64(best)
}
