package analysis

import (
	"math"
	"math/cmplx"
)

// FFT is a radix-2 transform; len(data) must be a power of two.
func FFT(data []float64) []complex128 {
	n := len(data)
	if n <= 1 {
		result := make([]complex128, n)
		for i := range data {
			result[i] = complex(data[i], 0)
		}
		return result
	}

	if n&(n-1) != 0 {
		panic("fft requires power of 2 length")
	}

	even := make([]float64, n/2)
	odd := make([]float64, n/2)

	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	feven := FFT(even)
	fodd := FFT(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = feven[k] + w*fodd[k]
		result[k+n/2] = feven[k] - w*fodd[k]
	}

	return result
}

// PowerSpectrum returns the magnitudes of the first half of the transform
// of data with its mean removed, zero-padded to a power of two.
func PowerSpectrum(data []float64) []float64 {
	fft := FFT(pad(demean(data)))
	ps := make([]float64, len(fft)/2)

	for i := range ps {
		ps[i] = cmplx.Abs(fft[i])
	}

	return ps
}

// DominantPeriod returns the period, in samples, of the strongest non-zero
// frequency of data. It returns 0 for series too short or flat to have one.
func DominantPeriod(data []float64) float64 {
	ps := PowerSpectrum(data)
	best, bestPower := 0, 0.0
	for i := 1; i < len(ps); i++ {
		if ps[i] > bestPower {
			best, bestPower = i, ps[i]
		}
	}
	if best == 0 || bestPower < 1e-12 {
		return 0
	}
	return float64(2*len(ps)) / float64(best)
}

func demean(data []float64) []float64 {
	out := make([]float64, len(data))
	sum, n := 0.0, 0
	for _, v := range data {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			sum += v
			n++
		}
	}
	if n == 0 {
		return out
	}
	mean := sum / float64(n)
	for i, v := range data {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out[i] = v - mean
		}
	}
	return out
}

func pad(data []float64) []float64 {
	n := 1
	for n < len(data) {
		n <<= 1
	}
	out := make([]float64, n)
	copy(out, data)
	return out
}
