package driver

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"portlang/internal/diag"
	"portlang/internal/source"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит результаты компиляции по хешу содержимого файла.
// Повторный запуск check по неизменённым файлам восстанавливает диагностики
// без перекомпиляции. Документ не кешируется: это кеш исходов, не формат
// сериализации ast.Portfolio. Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// diskDiagnostic is the cached form of one diagnostic.
type diskDiagnostic struct {
	Severity   uint8
	Code       uint16
	Message    string
	Suggestion string
	HasSpan    bool
	Start      uint32
	End        uint32
}

// DiskPayload stores one compile outcome for fast re-reporting.
type DiskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	Path        string
	Valid       bool
	Diagnostics []diskDiagnostic
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt opens a cache rooted at an explicit directory (tests).
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	// Подкаталог для удобства очистки.
	return filepath.Join(c.dir, "outcomes", hexKey+".msgpack")
}

// Store records the outcome of a finished compile, keyed by content hash.
func (c *DiskCache) Store(path string, res *CompileResult) error {
	payload := DiskPayload{
		Schema: diskCacheSchemaVersion,
		Path:   path,
		Valid:  res.Valid,
	}
	for _, d := range res.Bag.Items() {
		payload.Diagnostics = append(payload.Diagnostics, diskDiagnostic{
			Severity:   uint8(d.Severity),
			Code:       uint16(d.Code),
			Message:    d.Message,
			Suggestion: d.Suggestion,
			HasSpan:    d.HasSpan,
			Start:      d.Primary.Start,
			End:        d.Primary.End,
		})
	}

	data, err := msgpack.Marshal(&payload)
	if err != nil {
		return fmt.Errorf("failed to marshal cache payload: %w", err)
	}

	target := c.pathFor(res.File.Hash)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	// Атомарная запись через временный файл.
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}

// Lookup rebuilds a cached compile outcome for path, if its current content
// hash has an entry. The rebuilt result carries the bag and verdict but no
// document; callers needing the document must recompile.
func (c *DiskCache) Lookup(path string, maxDiagnostics int) (*CompileResult, bool) {
	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		return nil, false
	}
	file := fileSet.Get(fileID)

	c.mu.RLock()
	data, err := os.ReadFile(c.pathFor(file.Hash))
	c.mu.RUnlock()
	if err != nil {
		return nil, false
	}

	var payload DiskPayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return nil, false
	}
	if payload.Schema != diskCacheSchemaVersion {
		return nil, false
	}

	bag := diag.NewBag(maxDiagnostics)
	for _, d := range payload.Diagnostics {
		bag.Add(diag.Diagnostic{
			Severity:   diag.Severity(d.Severity),
			Code:       diag.Code(d.Code),
			Message:    d.Message,
			Suggestion: d.Suggestion,
			HasSpan:    d.HasSpan,
			Primary: source.Span{
				File:  fileID,
				Start: d.Start,
				End:   d.End,
			},
		})
	}

	return &CompileResult{
		FileSet: fileSet,
		File:    file,
		Bag:     bag,
		Valid:   payload.Valid,
	}, true
}
