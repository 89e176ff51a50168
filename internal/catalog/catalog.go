// Package catalog loads door type assets and hands them out by name.
//
// A Catalog owns exactly one *doortype.DoorType per asset name, so the
// pointer returned for a name is stable for the life of the catalog and
// can be used for door type compatibility checks. Catalogs are read-only
// after load and safe for concurrent readers.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/procdungeon/internal/doortype"
)

var (
	// ErrDuplicateName is returned when two assets share a name.
	ErrDuplicateName = errors.New("duplicate door type name")
	// ErrUnknownDoorType is returned by Resolve for a name not in the catalog.
	ErrUnknownDoorType = errors.New("unknown door type")
	// ErrMissingName is returned for an asset document without a name.
	ErrMissingName = errors.New("door type asset has no name")
)

// maxParallelFiles bounds concurrent asset file reads.
const maxParallelFiles = 8

// Options control how assets are turned into door types.
type Options struct {
	Validation       doortype.ValidationPolicy
	KeepDescriptions bool
}

// Catalog is an immutable set of door types keyed by name.
type Catalog struct {
	byName map[string]*doortype.DoorType
	names  []string // sorted
}

// Get returns the door type with the given name.
func (c *Catalog) Get(name string) (*doortype.DoorType, bool) {
	dt, ok := c.byName[name]
	return dt, ok
}

// Resolve maps an asset reference to a door type. An empty reference is
// a door with no type and resolves to nil without error.
func (c *Catalog) Resolve(name string) (*doortype.DoorType, error) {
	if name == "" {
		return nil, nil
	}
	dt, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDoorType, name)
	}
	return dt, nil
}

// Names returns all door type names in sorted order.
func (c *Catalog) Names() []string {
	return slices.Clone(c.names)
}

// All returns every door type, ordered by name.
func (c *Catalog) All() []*doortype.DoorType {
	out := make([]*doortype.DoorType, 0, len(c.names))
	for _, n := range c.names {
		out = append(out, c.byName[n])
	}
	return out
}

// Len returns the number of door types.
func (c *Catalog) Len() int {
	return len(c.byName)
}

// FromDoorTypes builds a catalog from already constructed door types,
// e.g. rows loaded from the database. Options are applied to each one.
func FromDoorTypes(types []*doortype.DoorType, opts Options) (*Catalog, error) {
	c := &Catalog{byName: make(map[string]*doortype.DoorType, len(types))}
	for _, dt := range types {
		if err := c.add(dt, opts); err != nil {
			return nil, err
		}
	}
	c.seal()
	return c, nil
}

func (c *Catalog) add(dt *doortype.DoorType, opts Options) error {
	if dt == nil || dt.Name() == "" {
		return ErrMissingName
	}
	if _, dup := c.byName[dt.Name()]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateName, dt.Name())
	}
	checked, err := opts.Validation.Apply(dt)
	if err != nil {
		return err
	}
	if !opts.KeepDescriptions && checked.Description() != "" {
		checked = checked.WithoutDescription()
	}
	c.byName[checked.Name()] = checked
	return nil
}

func (c *Catalog) seal() {
	c.names = make([]string, 0, len(c.byName))
	for n := range c.byName {
		c.names = append(c.names, n)
	}
	slices.Sort(c.names)
}

// LoadDir loads every *.yaml / *.yml file under dir (recursively).
// Files are parsed in parallel; door types are added in path order so
// duplicate reports are deterministic.
func LoadDir(ctx context.Context, dir string, opts Options) (*Catalog, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning asset dir %s: %w", dir, err)
	}
	slices.Sort(paths)

	parsed := make([][]assetDef, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelFiles)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			defs, err := loadFile(path)
			if err != nil {
				return err
			}
			parsed[i] = defs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c := &Catalog{byName: make(map[string]*doortype.DoorType)}
	for i, defs := range parsed {
		for _, def := range defs {
			if err := c.add(def.toDoorType(), opts); err != nil {
				return nil, fmt.Errorf("%s: %w", paths[i], err)
			}
		}
	}
	c.seal()

	slog.Info("loaded door types", "count", c.Len(), "files", len(paths), "dir", dir)
	return c, nil
}

func loadFile(path string) ([]assetDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading asset %s: %w", path, err)
	}
	defs, err := decodeAssets(data)
	if err != nil {
		return nil, fmt.Errorf("parsing asset %s: %w", path, err)
	}
	return defs, nil
}
