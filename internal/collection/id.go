package collection

import (
	"crypto/rand"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid/v2"
)

// IDGenerator produces ids for new records.
type IDGenerator interface {
	NewID() string
}

// ULIDGenerator issues time-ordered ULIDs. Ids minted within the same
// millisecond stay unique and increasing.
type ULIDGenerator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
}

func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     time.Now,
	}
}

func (g *ULIDGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(g.now()), g.entropy).String()
}

// SequenceGenerator issues Prefix+"1", Prefix+"2", ... and is meant for
// tests and fixtures.
type SequenceGenerator struct {
	Prefix string
	next   atomic.Int64
}

func (g *SequenceGenerator) NewID() string {
	return g.Prefix + strconv.FormatInt(g.next.Add(1), 10)
}
