// questgen builds per-zone quest plans (ordered quests, farm hotspots, quest
// givers and service NPCs) from a MaNGOS world database and Questie spawn tables.
//
// Usage:
//
//	questgen [-config path] [-faction Alliance|Horde] [-out plans.json] zoneID...
//	questgen -search elwynn
//	questgen -list
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/questgen/internal/config"
	"github.com/udisondev/questgen/internal/db"
	"github.com/udisondev/questgen/internal/db/sqlitestore"
	"github.com/udisondev/questgen/internal/geo"
	"github.com/udisondev/questgen/internal/planner"
	"github.com/udisondev/questgen/internal/questie"
	"github.com/udisondev/questgen/internal/spawn"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	faction    string
	out        string
	search     string
	list       bool
	workers    int
	zones      []int32
}

func parseArgs(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("questgen", flag.ContinueOnError)
	fs.StringVar(&o.configPath, "config", "", "config path (default $"+config.EnvPath+" or "+config.DefaultPath+")")
	fs.StringVar(&o.faction, "faction", "", "Alliance or Horde (overrides config)")
	fs.StringVar(&o.out, "out", "", "output file, - for stdout (overrides config)")
	fs.StringVar(&o.search, "search", "", "print zones whose name contains this text and exit")
	fs.BoolVar(&o.list, "list", false, "print all named zones and exit")
	fs.IntVar(&o.workers, "workers", 0, "zones planned in parallel (overrides config)")
	if err := fs.Parse(args); err != nil {
		return o, err
	}

	zones, err := parseZoneIDs(fs.Args())
	if err != nil {
		return o, err
	}
	o.zones = zones

	if o.search == "" && !o.list && len(o.zones) == 0 {
		fs.Usage()
		return o, fmt.Errorf("no zone ids given")
	}
	return o, nil
}

func parseZoneIDs(args []string) ([]int32, error) {
	zones := make([]int32, 0, len(args))
	for _, a := range args {
		id, err := strconv.ParseInt(a, 10, 32)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid zone id %q", a)
		}
		zones = append(zones, int32(id))
	}
	return zones, nil
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	opts, err := parseArgs(args)
	if err != nil {
		return err
	}

	if opts.search != "" || opts.list {
		return printZones(stdout, opts.search)
	}

	cfg, err := config.LoadGenerator(config.ResolvePath(opts.configPath))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if opts.faction != "" {
		cfg.Faction = opts.faction
	}
	if opts.out != "" {
		cfg.Output = opts.out
	}
	if opts.workers > 0 {
		cfg.Workers = opts.workers
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))
	slog.Info("questgen starting",
		"zones", len(opts.zones),
		"faction", cfg.Faction,
		"driver", cfg.Database.Driver,
		"workers", cfg.Workers)

	store, closeStore, err := openStore(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer closeStore()

	tables := questie.NewCache(questie.DefaultSources(cfg.Questie.Dir, cfg.Questie.NpcFile, cfg.Questie.ObjectFile))
	resolver := spawn.NewResolver(tables, geo.Default(), store)
	p := planner.New(store, resolver, geo.Default(), plannerOptions(cfg))

	plans := make([]*planner.ZonePlan, len(opts.zones))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, zoneID := range opts.zones {
		g.Go(func() error {
			plan, err := p.Plan(gctx, zoneID, cfg.Faction)
			if err != nil {
				return fmt.Errorf("zone %d: %w", zoneID, err)
			}
			plans[i] = plan
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return writePlans(cfg.Output, stdout, plans)
}

func plannerOptions(cfg config.Generator) planner.Options {
	opts := planner.DefaultOptions()
	opts.MaxStarterDistance = cfg.MaxStarterDistance
	opts.Services = planner.Services{
		Vendors:       cfg.Services.Vendors,
		FlightMasters: cfg.Services.FlightMasters,
		Trainers:      cfg.Services.Trainers,
	}
	return opts
}

// worldStore is the full read surface needed by the planner and the spawn fallback.
type worldStore interface {
	planner.Store
	spawn.RowStore
}

func openStore(ctx context.Context, cfg config.DatabaseConfig) (worldStore, func(), error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		s, err := sqlitestore.Open(ctx, cfg.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		if cfg.Migrate {
			if err := s.Migrate(ctx); err != nil {
				s.Close()
				return nil, nil, fmt.Errorf("migrating sqlite store: %w", err)
			}
		}
		slog.Info("world store opened", "driver", cfg.Driver, "path", cfg.Path)
		return s, func() { s.Close() }, nil

	case config.DriverPostgres:
		dsn := cfg.DSN()
		if cfg.Migrate {
			if err := db.RunMigrations(ctx, dsn); err != nil {
				return nil, nil, fmt.Errorf("running migrations: %w", err)
			}
		}
		database, err := db.New(ctx, dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to world db: %w", err)
		}
		slog.Info("world store opened", "driver", cfg.Driver, "host", cfg.Host, "dbname", cfg.DBName)
		return database.World(), database.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

func writePlans(path string, stdout io.Writer, plans []*planner.ZonePlan) error {
	data, err := json.MarshalIndent(plans, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding plans: %w", err)
	}
	data = append(data, '\n')

	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing plans to %s: %w", path, err)
	}
	slog.Info("plans written", "path", path, "zones", len(plans))
	return nil
}

func printZones(w io.Writer, partial string) error {
	zones := geo.SearchZones(partial)
	if len(zones) == 0 {
		_, err := fmt.Fprintf(w, "no zones match %q\n", partial)
		return err
	}
	for _, z := range zones {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", z.ID, z.Name); err != nil {
			return err
		}
	}
	return nil
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
