package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	logpkg "playground-seed/common/logger"
	redispkg "playground-seed/common/redis"
	"playground-seed/internal/config"
	"playground-seed/internal/layout"
	"playground-seed/internal/seeder"
	"playground-seed/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const serviceName = "playground-seed"

type flags struct {
	envFiles []string
	rooms    string
	sponsors string
	events   string
	tileRoom string
	dryRun   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:           serviceName,
		Short:         "Reset Redis and seed rooms, elements and hallways from the layout files",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f)
		},
	}
	cmd.Flags().StringSliceVar(&f.envFiles, "env-file", nil, "env files to load instead of .env")
	cmd.Flags().StringVar(&f.rooms, "rooms", "", "rooms layout file (overrides LAYOUT_ROOMS_FILE)")
	cmd.Flags().StringVar(&f.sponsors, "sponsors", "", "sponsors file (overrides LAYOUT_SPONSORS_FILE)")
	cmd.Flags().StringVar(&f.events, "events", "", "events file (overrides LAYOUT_EVENTS_FILE)")
	cmd.Flags().StringVar(&f.tileRoom, "tile-room", "", "room that receives the tile grid (overrides TILE_ROOM)")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "log every write instead of touching Redis")
	return cmd
}

func run(cmd *cobra.Command, f *flags) error {
	// 加载配置
	cfg, err := config.Load(f.envFiles...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return err
	}
	applyFlags(cmd, cfg, f)

	// 初始化日志
	log, err := logpkg.NewLogger(cfg.Log.Level, cfg.Log.Format, serviceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 先加载并校验全部文档，失败时不写入任何数据
	doc, err := layout.Load(layout.Paths{
		Rooms:    cfg.Layout.RoomsFile,
		Sponsors: cfg.Layout.SponsorsFile,
		Events:   cfg.Layout.EventsFile,
	}, log)
	if err != nil {
		log.Error("Failed to load layout", zap.Error(err))
		return err
	}

	var st store.Store
	if f.dryRun {
		st = store.NewDryRunStore(log)
	} else {
		client := redispkg.NewRedisClient(&cfg.Redis)
		defer redispkg.Close(client)

		if err := redispkg.Ping(ctx, client); err != nil {
			log.Error("Failed to connect to Redis", zap.Error(err))
			return err
		}
		st = store.NewRedisStore(client)
	}

	log.Info("Seeding layout",
		zap.String("redis", cfg.Redis.String()),
		zap.String("rooms_file", cfg.Layout.RoomsFile),
		zap.String("tile_room", cfg.Seed.TileRoom),
		zap.Bool("dry_run", f.dryRun),
	)

	s := seeder.NewSeeder(st, log,
		seeder.WithTileRoom(cfg.Seed.TileRoom),
		seeder.WithOrganizerEmail(cfg.Seed.OrganizerEmail),
	)
	if _, err := s.Seed(ctx, doc); err != nil {
		log.Error("Seed failed, rerun to reset", zap.Error(err))
		return err
	}
	return nil
}

// applyFlags 命令行参数优先于环境变量
func applyFlags(cmd *cobra.Command, cfg *config.Config, f *flags) {
	if f.rooms != "" {
		cfg.Layout.RoomsFile = f.rooms
	}
	if cmd.Flags().Changed("sponsors") {
		cfg.Layout.SponsorsFile = f.sponsors
	}
	if cmd.Flags().Changed("events") {
		cfg.Layout.EventsFile = f.events
	}
	if cmd.Flags().Changed("tile-room") {
		cfg.Seed.TileRoom = f.tileRoom
	}
}
