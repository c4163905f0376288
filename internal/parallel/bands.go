package parallel

import "sync"

// minBandRows is the smallest band worth handing to another goroutine.
const minBandRows = 8

var shared = sync.OnceValue(func() *BandPool {
	return NewBandPool(0)
})

// Shared returns the process-wide pool, started on first use.
func Shared() *BandPool {
	return shared()
}

// Bands splits the rows [0, height) into at most n contiguous, disjoint
// bands of near-equal size. Each band is [b[0], b[1]).
func Bands(height, n int) [][2]int {
	if height <= 0 {
		return nil
	}
	n = max(1, min(n, height/minBandRows))
	bands := make([][2]int, 0, n)
	for i := range n {
		y0 := height * i / n
		y1 := height * (i + 1) / n
		bands = append(bands, [2]int{y0, y1})
	}
	return bands
}

// ForEachBand calls fn once per band of Bands(height, n). With a single band
// fn runs on the calling goroutine; otherwise the bands run on the shared
// pool and ForEachBand returns when all of them are done. fn must only touch
// rows inside its band.
func ForEachBand(height, n int, fn func(y0, y1 int)) {
	bands := Bands(height, n)
	switch len(bands) {
	case 0:
		return
	case 1:
		fn(bands[0][0], bands[0][1])
		return
	}
	Shared().RunBands(bands, fn)
}
