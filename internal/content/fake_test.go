package content

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"testing"

	"marketsite/internal/models"
	"marketsite/internal/syncgw"
)

// fakeGateway is an in-memory Gateway. err is returned from every write;
// when gate is set, writes block until it is closed.
type fakeGateway struct {
	mu      sync.Mutex
	rows    map[models.Collection][]syncgw.Record
	loads   int
	upserts []syncgw.Record
	deletes []string
	err     error

	gate    chan struct{}
	started chan struct{}
}

func newFakeGateway(rows ...syncgw.Record) *fakeGateway {
	g := &fakeGateway{rows: make(map[models.Collection][]syncgw.Record)}
	for _, r := range rows {
		g.rows[r.Collection] = append(g.rows[r.Collection], r)
	}
	return g
}

func (g *fakeGateway) Available() bool { return true }

func (g *fakeGateway) LoadAll(ctx context.Context) map[models.Collection][]syncgw.Record {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.loads++
	out := make(map[models.Collection][]syncgw.Record, len(g.rows))
	for c, rs := range g.rows {
		out[c] = append([]syncgw.Record(nil), rs...)
	}
	return out
}

func (g *fakeGateway) Upsert(ctx context.Context, r syncgw.Record) error {
	if g.started != nil {
		g.started <- struct{}{}
	}
	if g.gate != nil {
		select {
		case <-g.gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.upserts = append(g.upserts, r)
	return g.err
}

func (g *fakeGateway) Delete(ctx context.Context, c models.Collection, id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.deletes = append(g.deletes, string(c)+"/"+id)
	return g.err
}

func (g *fakeGateway) upsertCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.upserts)
}

func (g *fakeGateway) lastUpsert(t *testing.T) syncgw.Record {
	t.Helper()
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.upserts) == 0 {
		t.Fatal("no upsert recorded")
	}
	return g.upserts[len(g.upserts)-1]
}

// memCache is an in-memory LocalCache.
type memCache struct {
	mu      sync.Mutex
	data    []byte
	saves   int
	cleared int
}

func (c *memCache) LoadSnapshot(ctx context.Context) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data, nil
}

func (c *memCache) SaveSnapshot(ctx context.Context, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = append([]byte(nil), data...)
	c.saves++
	return nil
}

func (c *memCache) ClearSnapshot(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = nil
	c.cleared++
	return nil
}

func record(t *testing.T, c models.Collection, id string, v any) syncgw.Record {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal row: %v", err)
	}
	return syncgw.Record{Collection: c, ID: id, Data: data}
}

// sequence returns an id generator yielding id-1, id-2, ...
func sequence() func() string {
	var (
		mu sync.Mutex
		n  int
	)
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return "id-" + strconv.Itoa(n)
	}
}
