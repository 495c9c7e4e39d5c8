package sake

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	domainerrors "github.com/iroha-labs/palette-server/internal/errors"
	"github.com/iroha-labs/palette-server/internal/search"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

type catalogFile struct {
	Sakes []Sake `yaml:"sakes"`
}

// Parse decodes a YAML catalog. Every entry needs a unique, non-empty id
// and a name.
func Parse(data []byte) ([]Sake, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(f.Sakes) == 0 {
		return nil, fmt.Errorf("catalog has no sakes")
	}

	seen := make(map[string]struct{}, len(f.Sakes))
	for i, s := range f.Sakes {
		if s.ID == "" {
			return nil, fmt.Errorf("sake at index %d has no id", i)
		}
		if s.Name == "" {
			return nil, fmt.Errorf("sake %q has no name", s.ID)
		}
		if _, dup := seen[s.ID]; dup {
			return nil, fmt.Errorf("duplicate sake id %q", s.ID)
		}
		seen[s.ID] = struct{}{}
	}
	return f.Sakes, nil
}

// LoadFile reads and parses a YAML catalog from disk.
func LoadFile(path string) ([]Sake, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	sakes, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sakes, nil
}

// Embedded returns the catalog compiled into the binary.
func Embedded() []Sake {
	sakes, err := Parse(embeddedCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded sake catalog: %v", err))
	}
	return sakes
}

// Catalog is the in-memory sake catalog plus its search index.
//
// Thread safety: reads take the read lock; Replace swaps the contents
// under the write lock so readers never observe a partial catalog.
type Catalog struct {
	mu        sync.RWMutex
	replaceMu sync.Mutex // serialises Replace so index and slice agree
	sakes     []Sake
	byID      map[string]int
	index     *search.Index
	logger    *slog.Logger
}

// NewCatalog builds a catalog and indexes sakes for search.
func NewCatalog(sakes []Sake, logger *slog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	index, err := search.NewIndex(search.Options{Logger: logger})
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		index:  index,
		logger: logger,
	}
	if err := c.Replace(sakes); err != nil {
		_ = index.Close()
		return nil, err
	}
	return c, nil
}

// Open loads the catalog from path, or the embedded catalog when path is empty.
func Open(path string, logger *slog.Logger) (*Catalog, error) {
	sakes := Embedded()
	if path != "" {
		var err error
		if sakes, err = LoadFile(path); err != nil {
			return nil, err
		}
	}
	return NewCatalog(sakes, logger)
}

// Replace swaps the catalog contents. On error the previous contents stay.
func (c *Catalog) Replace(sakes []Sake) error {
	c.replaceMu.Lock()
	defer c.replaceMu.Unlock()

	sakes = slices.Clone(sakes)

	byID := make(map[string]int, len(sakes))
	docs := make([]*search.Document, len(sakes))
	for i, s := range sakes {
		byID[s.ID] = i
		docs[i] = s.document()
	}

	if err := c.index.Rebuild(docs); err != nil {
		return fmt.Errorf("index catalog: %w", err)
	}

	c.mu.Lock()
	c.sakes = sakes
	c.byID = byID
	c.mu.Unlock()

	c.logger.Debug("sake catalog replaced", "count", len(sakes))
	return nil
}

// Reload re-reads path and replaces the catalog. A file that fails to load
// leaves the current catalog in place.
func (c *Catalog) Reload(path string) error {
	sakes, err := LoadFile(path)
	if err != nil {
		return err
	}
	return c.Replace(sakes)
}

// All returns every sake in catalog order.
func (c *Catalog) All() []Sake {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.sakes)
}

// Len returns the number of sakes.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.sakes)
}

// IndexedCount returns the number of documents in the search index.
func (c *Catalog) IndexedCount() (uint64, error) {
	return c.index.DocumentCount()
}

// Get returns the sake with id.
func (c *Catalog) Get(id string) (Sake, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.byID[id]
	if !ok {
		return Sake{}, domainerrors.NotFoundf("sake %s not found", id)
	}
	return c.sakes[i], nil
}

// Recommend filters the catalog by prefs.
func (c *Catalog) Recommend(prefs Preferences) []Sake {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Recommend(c.sakes, prefs)
}

// Search runs a full-text query and returns matching sakes by relevance,
// along with the total match count.
func (c *Catalog) Search(ctx context.Context, params search.Params) ([]Sake, uint64, error) {
	params.Query = normalize(params.Query)
	params.Prefecture = normalize(params.Prefecture)

	result, err := c.index.Search(ctx, params)
	if err != nil {
		return nil, 0, domainerrors.Wrap(err, domainerrors.CodeInternal, "search catalog")
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Sake, 0, len(result.Hits))
	for _, hit := range result.Hits {
		// A hit may refer to an entry dropped by a concurrent Replace.
		if i, ok := c.byID[hit.ID]; ok {
			out = append(out, c.sakes[i])
		}
	}
	return out, result.Total, nil
}

// Close releases the search index.
func (c *Catalog) Close() error {
	return c.index.Close()
}

// Shutdown implements do.Shutdownable.
func (c *Catalog) Shutdown() error {
	return c.Close()
}
