package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"golang.org/x/sync/errgroup"

	"github.com/tahaelba/WinCCToSQL/archive"
	"github.com/tahaelba/WinCCToSQL/blob"
	"github.com/tahaelba/WinCCToSQL/compress"
	"github.com/tahaelba/WinCCToSQL/format"
	"github.com/tahaelba/WinCCToSQL/internal/pool"
)

// BlockSource streams a tag's compressed blocks in time order. archive.DB
// implements it; tests substitute an in-memory source.
type BlockSource interface {
	Blocks(ctx context.Context, valueID int32, max int, fn func(blob.CompressedBlock) error) error
}

// Exporter writes one CSV file per tag into OutDir.
type Exporter struct {
	Source      BlockSource
	OutDir      string
	Opts        blob.Options
	Compression format.CompressionType
	MaxBlocks   int
	Workers     int
	Logger      *slog.Logger
}

func (e *Exporter) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}

	return slog.Default()
}

// ExportTags exports every tag on a bounded worker pool and returns one
// summary per tag, in input order. The first tag-level failure cancels the
// remaining work.
func (e *Exporter) ExportTags(ctx context.Context, tags []archive.TagDescriptor) ([]TagSummary, error) {
	if err := os.MkdirAll(e.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	workers := e.Workers
	if workers <= 0 {
		workers = 4
	}

	summaries := make([]TagSummary, len(tags))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, tag := range tags {
		g.Go(func() error {
			summary, err := e.ExportTag(ctx, tag)
			if err != nil {
				return fmt.Errorf("export tag %q (ValueID=%d): %w", tag.Name, tag.ValueID, err)
			}
			summaries[i] = summary

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return summaries, nil
}

// ExportTag decodes one tag's blocks and writes its CSV file. Blocks that
// violate the decode contract (inverted time range) are skipped and
// counted, not fatal; only source and filesystem failures abort the tag.
func (e *Exporter) ExportTag(ctx context.Context, tag archive.TagDescriptor) (TagSummary, error) {
	summary := TagSummary{ValueID: tag.ValueID, Name: tag.Name}
	log := e.logger().With("tag", tag.Name, "valueid", tag.ValueID)

	var rows []Row
	err := e.Source.Blocks(ctx, tag.ValueID, e.MaxBlocks, func(blk blob.CompressedBlock) error {
		diag, blockRows, err := e.decodeBlock(tag, blk)
		if err != nil {
			log.Warn("skipping block", "timebegin", blk.TimeBegin, "error", err)
			summary.SkippedBlocks++

			return nil
		}

		summary.add(diag)
		rows = append(rows, blockRows...)

		return nil
	})
	if err != nil {
		return summary, fmt.Errorf("stream blocks: %w", err)
	}

	if len(rows) == 0 {
		log.Info("no samples, skipping file", "blocks", summary.Blocks)
		return summary, nil
	}

	path, err := e.writeFile(tag, rows)
	if err != nil {
		return summary, err
	}
	summary.File = path

	log.Info("exported tag",
		"file", filepath.Base(path),
		"blocks", summary.Blocks,
		"samples", summary.Samples,
		"inferred_periods", summary.InferredPeriods,
		"malformed", summary.Malformed,
	)

	return summary, nil
}

func (e *Exporter) decodeBlock(tag archive.TagDescriptor, blk blob.CompressedBlock) (blob.Diagnostics, []Row, error) {
	if tag.IsDigital() {
		seq, diag, err := blob.DecodeDigital(blk, e.Opts)
		if err != nil {
			return diag, nil, err
		}

		rows := make([]Row, 0, diag.Samples)
		for s := range seq {
			rows = append(rows, digitalRow(s))
		}

		return diag, rows, nil
	}

	seq, diag, err := blob.DecodeAnalog(blk, tag.Precision, e.Opts)
	if err != nil {
		return diag, nil, err
	}

	rows := make([]Row, 0, diag.Samples)
	for s := range seq {
		rows = append(rows, analogRow(s))
	}

	return diag, rows, nil
}

func (e *Exporter) writeFile(tag archive.TagDescriptor, rows []Row) (string, error) {
	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)

	if err := gocsv.Marshal(&rows, buf); err != nil {
		return "", fmt.Errorf("marshal csv: %w", err)
	}

	ct := e.Compression
	if ct == 0 {
		ct = format.CompressionNone
	}
	codec, err := compress.New(ct)
	if err != nil {
		return "", err
	}
	data, err := codec.Compress(buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("compress output: %w", err)
	}

	name := SafeName(tag.Name, tag.ValueID) + ".csv" + ct.Ext()
	path := filepath.Join(e.OutDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}

	return path, nil
}
