package parallel

import (
	"sync/atomic"
	"testing"
)

func TestPoolRunsEverything(t *testing.T) {
	for _, workers := range []int{0, 1, 4} {
		var n atomic.Int64
		p := Start(workers)
		for i := range 100 {
			p.Do(func() { n.Add(int64(i)) })
		}
		p.Wait()
		if got := n.Load(); got != 4950 {
			t.Fatalf("%d workers: sum got %d want 4950", workers, got)
		}
	}
}

func TestPoolWaitTwice(t *testing.T) {
	p := Start(2)
	p.Do(func() {})
	p.Wait()
	p.Wait()
}
