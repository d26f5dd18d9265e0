package questie

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/sync/singleflight"

	"github.com/udisondev/questgen/internal/model"
)

// Default Questie database file names (TBC).
const (
	DefaultNpcFile    = "tbcNpcDB.lua"
	DefaultObjectFile = "tbcObjectDB.lua"
)

// Source describes the backing document of one entity kind.
type Source struct {
	Path       string
	FieldIndex int
}

// DefaultSources returns the npc/object documents under dir.
func DefaultSources(dir, npcFile, objectFile string) map[model.EntityKind]Source {
	if npcFile == "" {
		npcFile = DefaultNpcFile
	}
	if objectFile == "" {
		objectFile = DefaultObjectFile
	}
	return map[model.EntityKind]Source{
		model.KindCreature: {Path: filepath.Join(dir, npcFile), FieldIndex: NpcSpawnsField},
		model.KindObject:   {Path: filepath.Join(dir, objectFile), FieldIndex: ObjectSpawnsField},
	}
}

// Table is the parsed, read-only spawn table of one entity kind.
type Table struct {
	Kind   model.EntityKind
	Path   string
	Digest uint64 // xxhash of the raw document, 0 when nothing was read
	Stats  Stats
	Err    error // read failure, if any; the table is then empty

	entries map[int32][]model.SpawnRecord
}

// Spawns returns the records of entityID. The slice must not be modified.
func (t *Table) Spawns(entityID int32) []model.SpawnRecord {
	if t == nil {
		return nil
	}
	return t.entries[entityID]
}

// Len returns the number of entities with spawns.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Cache parses each backing document at most once per process and keeps the
// result for its lifetime. Safe for concurrent use: concurrent first requests
// for the same kind share one parse.
type Cache struct {
	sources map[model.EntityKind]Source

	mu     sync.RWMutex
	tables map[model.EntityKind]*Table

	group singleflight.Group
}

// NewCache creates an empty cache over the given sources.
func NewCache(sources map[model.EntityKind]Source) *Cache {
	return &Cache{
		sources: sources,
		tables:  make(map[model.EntityKind]*Table, len(sources)),
	}
}

// Loaded reports whether kind has already been parsed.
func (c *Cache) Loaded(kind model.EntityKind) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.tables[kind]
	return ok
}

// Table returns the parsed table of kind, loading it on first use.
// It never fails: a missing or unreadable document yields an empty table.
func (c *Cache) Table(kind model.EntityKind) *Table {
	c.mu.RLock()
	t, ok := c.tables[kind]
	c.mu.RUnlock()
	if ok {
		return t
	}

	v, _, _ := c.group.Do(kind.String(), func() (any, error) {
		c.mu.RLock()
		t, ok := c.tables[kind]
		c.mu.RUnlock()
		if ok {
			return t, nil
		}

		t = c.load(kind)

		c.mu.Lock()
		c.tables[kind] = t
		c.mu.Unlock()
		return t, nil
	})
	return v.(*Table)
}

// Spawns returns the structured-table records for one entity.
func (c *Cache) Spawns(kind model.EntityKind, entityID int32) []model.SpawnRecord {
	return c.Table(kind).Spawns(entityID)
}

func (c *Cache) load(kind model.EntityKind) *Table {
	src, ok := c.sources[kind]
	if !ok {
		slog.Warn("no questie source configured", "kind", kind)
		return &Table{Kind: kind, entries: map[int32][]model.SpawnRecord{}}
	}

	t := &Table{Kind: kind, Path: src.Path, entries: map[int32][]model.SpawnRecord{}}

	raw, path, err := readDocument(src.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Warn("questie file not found", "kind", kind, "path", src.Path)
		} else {
			slog.Error("reading questie file", "kind", kind, "path", src.Path, "err", err)
		}
		t.Err = err
		return t
	}
	t.Path = path
	t.Digest = xxhash.Sum64(raw)

	start := time.Now()
	t.entries, t.Stats = ParseDocument(string(raw), src.FieldIndex)

	slog.Info("questie table loaded",
		"kind", kind,
		"path", path,
		"entities", len(t.entries),
		"entries", t.Stats.Entries,
		"malformed_entries", t.Stats.MalformedEntry,
		"malformed_zones", t.Stats.MalformedZone,
		"digest", fmt.Sprintf("%016x", t.Digest),
		"elapsed", time.Since(start).Round(time.Millisecond))
	return t
}

// readDocument reads path, falling back to path+".zst". Zstandard documents
// are decompressed transparently.
func readDocument(path string) ([]byte, string, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && !strings.HasSuffix(path, ".zst") {
		if zraw, zerr := os.ReadFile(path + ".zst"); zerr == nil {
			raw, err, path = zraw, nil, path+".zst"
		}
	}
	if err != nil {
		return nil, path, err
	}

	if !strings.HasSuffix(path, ".zst") {
		return raw, path, nil
	}

	dec, err := zstd.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, path, fmt.Errorf("opening zstd stream %s: %w", path, err)
	}
	defer dec.Close()

	out, err := io.ReadAll(dec)
	if err != nil {
		return nil, path, fmt.Errorf("decompressing %s: %w", path, err)
	}
	return out, path, nil
}
