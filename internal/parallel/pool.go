package parallel

import (
	"runtime"
	"sync"
)

// band is one unit of queued work: rows [y0, y1) of a RunBands call.
type band struct {
	y0, y1 int
	fn     func(y0, y1 int)
	done   *sync.WaitGroup
}

// BandPool runs row bands on a fixed set of goroutines that live for the
// rest of the process.
//
// BandPool is safe for concurrent use. RunBands must not be called from
// inside a band function.
type BandPool struct {
	workers int
	queue   chan band
}

// NewBandPool starts a pool with the given number of workers. If workers is
// 0 or negative, GOMAXPROCS is used.
func NewBandPool(workers int) *BandPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &BandPool{
		workers: workers,
		queue:   make(chan band, 4*workers),
	}
	for range workers {
		go p.worker()
	}
	return p
}

func (p *BandPool) worker() {
	for b := range p.queue {
		b.fn(b.y0, b.y1)
		b.done.Done()
	}
}

// Workers returns the number of worker goroutines.
func (p *BandPool) Workers() int {
	return p.workers
}

// RunBands calls fn once per band and returns when every call has
// finished. The first band runs on the calling goroutine while the rest are
// queued to the workers. Bands must be disjoint for fn to write rows
// without synchronization.
func (p *BandPool) RunBands(bands [][2]int, fn func(y0, y1 int)) {
	if len(bands) == 0 {
		return
	}
	var wg sync.WaitGroup
	wg.Add(len(bands) - 1)
	for _, b := range bands[1:] {
		p.queue <- band{y0: b[0], y1: b[1], fn: fn, done: &wg}
	}
	fn(bands[0][0], bands[0][1])
	wg.Wait()
}
