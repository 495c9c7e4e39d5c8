package sake

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const oneSakeYAML = `sakes:
  - id: "20"
    name: 而今 純米吟醸
    name_en: Jikon Junmai Ginjo
    price: ¥2,000
`

func startWatcher(t *testing.T, c *Catalog, path string) *Watcher {
	t.Helper()
	w, err := NewWatcher(c, path, 20*time.Millisecond, nil)
	require.NoError(t, err)
	w.Start()
	t.Cleanup(func() { _ = w.Stop() })
	return w
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sake.yaml")
	writeCatalog(t, path, oneSakeYAML)

	c, err := Open(path, nil)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()
	require.Equal(t, 1, c.Len())

	startWatcher(t, c, path)

	writeCatalog(t, path, twoSakeYAML)

	assert.Eventually(t, func() bool { return c.Len() == 2 }, 3*time.Second, 20*time.Millisecond)
}

func TestWatcher_ReloadsOnRenameOver(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sake.yaml")
	writeCatalog(t, path, oneSakeYAML)

	c, err := Open(path, nil)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	startWatcher(t, c, path)

	tmp := filepath.Join(dir, ".sake.yaml.tmp")
	writeCatalog(t, tmp, twoSakeYAML)
	require.NoError(t, os.Rename(tmp, path))

	assert.Eventually(t, func() bool { return c.Len() == 2 }, 3*time.Second, 20*time.Millisecond)
}

func TestWatcher_InvalidFileKeepsCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sake.yaml")
	writeCatalog(t, path, twoSakeYAML)

	c, err := Open(path, nil)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	startWatcher(t, c, path)

	writeCatalog(t, path, "sakes: [")
	// Give the debounced reload time to run and fail.
	time.Sleep(300 * time.Millisecond)

	assert.Equal(t, 2, c.Len())
	_, err = c.Get("10")
	assert.NoError(t, err)
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sake.yaml")
	writeCatalog(t, path, oneSakeYAML)

	c, err := Open(path, nil)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	startWatcher(t, c, path)

	writeCatalog(t, filepath.Join(dir, "other.yaml"), twoSakeYAML)
	time.Sleep(300 * time.Millisecond)

	assert.Equal(t, 1, c.Len())
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sake.yaml")
	writeCatalog(t, path, oneSakeYAML)

	c, err := Open(path, nil)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	w, err := NewWatcher(c, path, 0, nil)
	require.NoError(t, err)
	w.Start()

	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Shutdown())
}

func TestNewWatcher_MissingDirectory(t *testing.T) {
	c := newTestCatalog(t)
	_, err := NewWatcher(c, filepath.Join(t.TempDir(), "nope", "sake.yaml"), 0, nil)
	assert.Error(t, err)
}
