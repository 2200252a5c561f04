package query

import (
	"fmt"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/gingerlifts/opldb/internal/indexset"
	"github.com/gingerlifts/opldb/internal/opltypes"
)

// DefaultCacheSize is the default entry count for a query Cache.
const DefaultCacheSize = 256

// Cache memoizes a full Engine.Rankings page behind a key built from the
// normalized query and pagination window, read-through style. It stores
// owned pages: since a RankingsQuery page never depends on anything except the immutable
// database it was built from, there is no invalidation to worry about for
// the lifetime of one Database.
type Cache struct {
	cache *lru.Cache[string, []opltypes.EntryID]
	eng   *Engine
}

// NewCache wraps eng in a read-through LRU cache of size entries (0 or
// negative uses DefaultCacheSize).
func NewCache(eng *Engine, size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	c, err := lru.New[string, []opltypes.EntryID](size)
	if err != nil {
		return nil, err
	}
	return &Cache{cache: c, eng: eng}, nil
}

// Rankings serves a page from cache if present, otherwise computes it via
// the wrapped Engine and caches the result. The returned page is always
// reported as borrowed, since the cache itself now owns the backing
// slice.
func (c *Cache) Rankings(q *RankingsQuery, start, end int) indexset.PossiblyOwned[opltypes.EntryID] {
	key := cacheKey(q, start, end)
	if page, ok := c.cache.Get(key); ok {
		return indexset.Borrow(page)
	}

	result := c.eng.Rankings(q, start, end)
	page := append([]opltypes.EntryID(nil), result.Slice()...)
	c.cache.Add(key, page)
	return indexset.Borrow(page)
}

func cacheKey(q *RankingsQuery, start, end int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "eq=%d&ord=%d&start=%d&end=%d", q.Equipment, q.Ordering, start, end)
	if q.Sex != nil {
		fmt.Fprintf(&b, "&sex=%d", *q.Sex)
	}
	if q.Year != nil {
		fmt.Fprintf(&b, "&year=%d", *q.Year)
	}
	if q.AgeClass != nil {
		b.WriteString("&ac=" + string(*q.AgeClass))
	}
	if q.Event != nil {
		fmt.Fprintf(&b, "&ev=%d", *q.Event)
	}
	if q.State != nil {
		b.WriteString("&st=" + q.State.String())
	}
	switch q.Federation.Kind {
	case FederationOne:
		fmt.Fprintf(&b, "&fed=%d", q.Federation.One)
	case FederationMeta:
		b.WriteString("&meta=" + q.Federation.Meta)
	}
	for _, wc := range q.Weightclasses {
		b.WriteString("&wc=" + strconv.Itoa(int(wc.Lo)) + "," + strconv.Itoa(int(wc.Hi)) + "," + strconv.FormatBool(wc.OpenHi))
	}
	return b.String()
}
