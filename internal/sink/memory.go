package sink

import (
	"context"
	"sync"

	"github.com/Lumos-Labs-HQ/catalogseed/internal/catalog"
)

// Recorder keeps every row in memory, in insertion order.
type Recorder struct {
	mu   sync.Mutex
	rows []catalog.Row
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Insert(ctx context.Context, row catalog.Row) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, row)
	return nil
}

func (r *Recorder) Rows() []catalog.Row {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]catalog.Row, len(r.rows))
	copy(out, r.rows)
	return out
}

// Counter forwards rows to another sink and counts successful inserts per
// table.
type Counter struct {
	next   catalog.Sink
	mu     sync.Mutex
	counts map[string]int
}

func NewCounter(next catalog.Sink) *Counter {
	return &Counter{
		next:   next,
		counts: make(map[string]int),
	}
}

func (c *Counter) Insert(ctx context.Context, row catalog.Row) error {
	if err := c.next.Insert(ctx, row); err != nil {
		return err
	}
	c.mu.Lock()
	c.counts[row.Table()]++
	c.mu.Unlock()
	return nil
}

func (c *Counter) Counts() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]int, len(c.counts))
	for k, v := range c.counts {
		out[k] = v
	}
	return out
}
