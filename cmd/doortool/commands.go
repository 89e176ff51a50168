package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gookit/color"

	"github.com/udisondev/procdungeon/internal/catalog"
	"github.com/udisondev/procdungeon/internal/db"
	"github.com/udisondev/procdungeon/internal/debugdraw"
	"github.com/udisondev/procdungeon/internal/doortype"
	"github.com/udisondev/procdungeon/internal/model"
)

var (
	colorHeader = color.Style{color.FgCyan, color.OpBold}
	colorSubtle = color.Style{color.FgGray}
	colorDenied = color.Style{color.FgRed, color.OpBold}
)

// newFlagSet returns a flag set with the shared -assets override.
func newFlagSet(name string, e *env) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.out)
	dir := fs.String("assets", e.cfg.Assets.Dir, "door type asset directory")
	return fs, dir
}

func loadCatalog(ctx context.Context, e *env, dir string, policy doortype.ValidationPolicy) (*catalog.Catalog, error) {
	return catalog.LoadDir(ctx, dir, catalog.Options{
		Validation:       policy,
		KeepDescriptions: e.cfg.Editor.KeepDescriptions,
	})
}

func runList(ctx context.Context, e *env, args []string) error {
	fs, dir := newFlagSet("list", e)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cat, err := loadCatalog(ctx, e, *dir, e.cfg.Assets.Validation)
	if err != nil {
		return err
	}

	fmt.Fprintln(e.out, colorHeader.Sprintf("%-4s %-20s %-22s %-7s %-10s %s", "", "NAME", "SIZE", "OFFSET", "COLOR", "DESCRIPTION"))
	printRow(e.out, nil, e.cfg.Door)
	for _, dt := range cat.All() {
		printRow(e.out, dt, e.cfg.Door)
	}
	return nil
}

func printRow(w io.Writer, dt *doortype.DoorType, defaults doortype.Defaults) {
	c := doortype.GetColor(dt, defaults)
	line := fmt.Sprintf("%-20s %-22s %-7.3g %-10s %s",
		dt, doortype.GetSize(dt, defaults), doortype.GetOffset(dt, defaults), c.Hex(), description(dt))
	if dt == nil {
		line = colorSubtle.Sprint(line)
	}
	fmt.Fprintf(w, "%s %s\n", swatch(c), line)
}

func description(dt *doortype.DoorType) string {
	if dt == nil {
		return "plugin defaults"
	}
	return dt.Description()
}

// swatch is a 4-cell block painted in c (plain brackets when colour output is off).
func swatch(c model.Color) string {
	if !color.Enable {
		return "[  ]"
	}
	return color.RGB(c.R, c.G, c.B, true).Sprint("    ")
}

func runValidate(ctx context.Context, e *env, args []string) error {
	fs, dir := newFlagSet("validate", e)
	if err := fs.Parse(args); err != nil {
		return err
	}

	// load unchecked, then report every violation instead of stopping at the first
	cat, err := loadCatalog(ctx, e, *dir, doortype.PolicyOff)
	if err != nil {
		return err
	}

	var problems []error
	for _, dt := range cat.All() {
		if err := doortype.Validate(dt); err != nil {
			problems = append(problems, err)
		}
	}
	for _, p := range problems {
		fmt.Fprintln(e.out, colorDenied.Sprint(p.Error()))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%d of %d door types out of range: %w", len(problems), cat.Len(), doortype.ErrOutOfRange)
	}

	fmt.Fprintf(e.out, "ok: %d door types\n", cat.Len())
	return nil
}

func runPreview(ctx context.Context, e *env, args []string) error {
	fs, dir := newFlagSet("preview", e)
	out := fs.String("o", "doortypes.png", "output PNG path")
	withDefault := fs.Bool("default", true, "include the untyped (default) door panel")
	cols := fs.Int("cols", debugdraw.DefaultOptions().Columns, "panels per row")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cat, err := loadCatalog(ctx, e, *dir, e.cfg.Assets.Validation)
	if err != nil {
		return err
	}

	types := cat.All()
	if *withDefault {
		types = append([]*doortype.DoorType{nil}, types...)
	}

	opts := debugdraw.DefaultOptions()
	opts.Columns = *cols
	img := debugdraw.RenderSheet(types, e.cfg.Door, e.cfg.RoomUnit, opts)

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", *out, err)
	}
	if err := debugdraw.WritePNG(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", *out, err)
	}

	slog.Info("preview written", "path", *out, "panels", len(types))
	return nil
}

func runImport(ctx context.Context, e *env, args []string) error {
	fs, dir := newFlagSet("import", e)
	if err := fs.Parse(args); err != nil {
		return err
	}

	// the table has CHECK constraints, so out-of-range assets would fail anyway
	cat, err := loadCatalog(ctx, e, *dir, doortype.PolicyReject)
	if err != nil {
		return err
	}

	dsn := e.cfg.Database.DSN()
	if err := db.RunMigrations(ctx, dsn); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	database, err := db.New(ctx, dsn)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.DoorTypes().SaveAll(ctx, cat.All()); err != nil {
		return err
	}
	slog.Info("door types imported", "count", cat.Len())
	return nil
}

func runExport(ctx context.Context, e *env, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(e.out)
	if err := fs.Parse(args); err != nil {
		return err
	}

	database, err := db.New(ctx, e.cfg.Database.DSN())
	if err != nil {
		return err
	}
	defer database.Close()

	types, err := database.DoorTypes().LoadAll(ctx)
	if err != nil {
		return err
	}
	return exportTypes(e, types)
}

// exportTypes runs rows through a catalog (same policy as file loads) and encodes them.
func exportTypes(e *env, types []*doortype.DoorType) error {
	cat, err := catalog.FromDoorTypes(types, catalog.Options{
		Validation:       e.cfg.Assets.Validation,
		KeepDescriptions: true,
	})
	if err != nil {
		return err
	}
	if cat.Len() == 0 {
		return errors.New("no door types in database")
	}
	return catalog.Encode(e.out, cat.All())
}
