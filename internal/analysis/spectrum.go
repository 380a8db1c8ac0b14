package analysis

import (
	"math"
	"math/cmplx"
)

// FFT computes the discrete Fourier transform by radix-2 decimation.
// Input is zero-padded to the next power of two.
func FFT(data []float64) []complex128 {
	n := 1
	for n < len(data) {
		n <<= 1
	}
	padded := make([]float64, n)
	copy(padded, data)
	return fftRecursive(padded)
}

func fftRecursive(data []float64) []complex128 {
	n := len(data)
	if n <= 1 {
		result := make([]complex128, n)
		for i := range data {
			result[i] = complex(data[i], 0)
		}
		return result
	}

	even := make([]float64, n/2)
	odd := make([]float64, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	feven := fftRecursive(even)
	fodd := fftRecursive(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = feven[k] + w*fodd[k]
		result[k+n/2] = feven[k] - w*fodd[k]
	}
	return result
}

// PowerSpectrum returns the magnitude of the positive-frequency half of
// the FFT.
func PowerSpectrum(data []float64) []float64 {
	fft := FFT(data)
	ps := make([]float64, len(fft)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(fft[i])
	}
	return ps
}

// DominantPeriod returns the period (in samples) of the strongest
// non-DC spectral component, or 0 when no component stands out.
func DominantPeriod(data []float64) float64 {
	ps := PowerSpectrum(data)
	if len(ps) < 2 {
		return 0
	}
	bestIdx := 0
	bestMag := 0.0
	for i := 1; i < len(ps); i++ {
		if ps[i] > bestMag {
			bestMag = ps[i]
			bestIdx = i
		}
	}
	if bestIdx == 0 {
		return 0
	}
	// Total FFT length is twice the spectrum length.
	return float64(2*len(ps)) / float64(bestIdx)
}
