package game

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Picker chooses an index in [0, n).
type Picker interface {
	IntN(n int) int
}

// lockedRand serializes access to a PCG source shared across requests.
type lockedRand struct {
	mu sync.Mutex // guards r only; pipeline runs share no other state
	r  *rand.Rand
}

// NewPicker returns a goroutine-safe picker. A zero seed is replaced by the
// current time; any other seed makes every pick sequence reproducible.
func NewPicker(seed uint64) Picker {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &lockedRand{r: rand.New(rand.NewPCG(seed, seed>>1|1))}
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}
