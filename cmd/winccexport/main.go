package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/tahaelba/WinCCToSQL/archive"
	"github.com/tahaelba/WinCCToSQL/export"
	"github.com/tahaelba/WinCCToSQL/format"
)

type CmdArgs struct {
	Server   string `long:"server" env:"WINCC_SQL_SERVER" required:"true" description:"SQL Server host[:port]"`
	Database string `long:"database" env:"WINCC_SQL_DATABASE" required:"true" description:"archive database name"`
	Username string `long:"username" env:"WINCC_SQL_USER" description:"SQL login (omit with --trusted)"`
	Password string `long:"password" env:"WINCC_SQL_PASSWORD" description:"SQL password"`
	Trusted  bool   `long:"trusted" description:"use integrated authentication"`

	OutDir  string `long:"outdir" default:"./out" description:"output directory for CSV files"`
	Pattern string `long:"pattern" default:"%" description:"SQL LIKE pattern for tag names (backslash escape, e.g. match digital tags with pattern %_DC escaped)"`
	ValueID int32  `long:"valueid" description:"export a single tag by ValueID instead of a pattern"`

	MaxTags   int `long:"max-tags" description:"limit number of tags (0 = all)"`
	MaxBlocks int `long:"max-blocks" description:"limit blocks per tag (0 = all)"`
	Workers   int `long:"workers" default:"4" description:"concurrent tag exports"`

	Compress       string  `long:"compress" default:"none" choice:"none" choice:"zstd" choice:"s2" choice:"lz4" description:"output compression"`
	Codec          string  `long:"codec" description:"force analog codec (float64, float32, int16, varint-delta)"`
	Scale          float64 `long:"scale" description:"override scale; default is the tag's CompPrecision"`
	MSBFirst       bool    `long:"msb-first" description:"read bit-packed digital payloads MSB-first"`
	DigitalDefault bool    `long:"digital-default" description:"default state for digital blocks with no transition at start"`

	Config  string `long:"config" description:"YAML heuristics config file"`
	Verbose bool   `long:"verbose" short:"v" description:"debug logging"`
}

func main() {
	// A missing .env file is fine; flags and env vars still apply.
	_ = godotenv.Load()

	var args CmdArgs
	if _, err := flags.Parse(&args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, "See 'winccexport -h' for help")
		os.Exit(2)
	}

	level := slog.LevelInfo
	if args.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(args, logger); err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
}

func run(args CmdArgs, logger *slog.Logger) error {
	if !args.Trusted && args.Password == "" {
		return fmt.Errorf("--password (or WINCC_SQL_PASSWORD) is required without --trusted")
	}

	heuristics, err := loadHeuristics(args.Config)
	if err != nil {
		return err
	}
	opts, err := decodeOptions(heuristics, args)
	if err != nil {
		return err
	}

	compression, ok := format.ParseCompression(args.Compress)
	if !ok {
		return fmt.Errorf("unknown compression %q", args.Compress)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := archive.Open(ctx, archive.Config{
		Server:   args.Server,
		Database: args.Database,
		Username: args.Username,
		Password: args.Password,
		Trusted:  args.Trusted,
	}, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	var tags []archive.TagDescriptor
	if args.ValueID != 0 {
		tag, err := db.Tag(ctx, args.ValueID)
		if err != nil {
			return err
		}
		tags = []archive.TagDescriptor{tag}
	} else {
		tags, err = db.Tags(ctx, args.Pattern, args.MaxTags)
		if err != nil {
			return err
		}
	}
	if len(tags) == 0 {
		logger.Warn("no tags matched", "pattern", args.Pattern)
		return nil
	}
	logger.Info("starting export", "tags", len(tags), "outdir", args.OutDir, "workers", args.Workers)

	exporter := &export.Exporter{
		Source:      db,
		OutDir:      args.OutDir,
		Opts:        opts,
		Compression: compression,
		MaxBlocks:   args.MaxBlocks,
		Workers:     args.Workers,
		Logger:      logger,
	}

	summaries, err := exporter.ExportTags(ctx, tags)
	if err != nil {
		return err
	}

	var samples, dirty int
	for _, s := range summaries {
		samples += s.Samples
		if !s.Clean() {
			dirty++
			logger.Warn("tag exported with anomalies",
				"tag", s.Name,
				"skipped", s.SkippedBlocks,
				"malformed", s.Malformed,
				"codec_mismatches", s.CodecMismatches,
				"truncated", s.Truncated,
			)
		}
	}
	logger.Info("export complete", "tags", len(summaries), "samples", samples, "tags_with_anomalies", dirty)

	return nil
}
