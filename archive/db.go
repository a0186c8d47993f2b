package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	_ "github.com/microsoft/go-mssqldb"

	"github.com/tahaelba/WinCCToSQL/blob"
	"github.com/tahaelba/WinCCToSQL/errs"
)

// Config holds the SQL Server connection parameters. With Trusted set the
// credentials are omitted and the driver uses integrated authentication.
type Config struct {
	Server   string
	Database string
	Username string
	Password string
	Trusted  bool
}

// BuildDSN renders the sqlserver:// connection URL for the go-mssqldb
// driver. Encryption is disabled: archive servers live on isolated plant
// networks and rarely carry valid certificates.
func BuildDSN(cfg Config) string {
	u := url.URL{
		Scheme: "sqlserver",
		Host:   cfg.Server,
	}
	if !cfg.Trusted {
		u.User = url.UserPassword(cfg.Username, cfg.Password)
	}

	q := url.Values{}
	q.Set("database", cfg.Database)
	q.Set("encrypt", "disable")
	q.Set("TrustServerCertificate", "true")
	u.RawQuery = q.Encode()

	return u.String()
}

// DB is a handle to one archive database.
type DB struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open connects to the archive and verifies the connection.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*DB, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := sql.Open("sqlserver", BuildDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("open archive connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping archive %q: %w", cfg.Server, err)
	}

	logger.Info("connected to archive", "server", cfg.Server, "database", cfg.Database)

	return &DB{db: db, logger: logger}, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}

// Tag fetches the descriptor for one ValueID. errs.ErrTagNotFound is
// returned when the archive has no such tag.
func (d *DB) Tag(ctx context.Context, valueID int32) (TagDescriptor, error) {
	const query = `
		SELECT ValueName, ISNULL(CompPrecision, 0), ISNULL(CompressionMode, 0), ISNULL(VarType, 0)
		FROM dbo.Archive WITH (NOLOCK)
		WHERE ValueID = @p1`

	tag := TagDescriptor{ValueID: valueID}
	err := d.db.QueryRowContext(ctx, query, valueID).
		Scan(&tag.Name, &tag.Precision, &tag.CompressionMode, &tag.VarType)
	if errors.Is(err, sql.ErrNoRows) {
		return TagDescriptor{}, fmt.Errorf("ValueID %d: %w", valueID, errs.ErrTagNotFound)
	}
	if err != nil {
		return TagDescriptor{}, fmt.Errorf("query tag %d: %w", valueID, err)
	}

	return tag, nil
}

// Tags lists tags whose ValueName matches the SQL LIKE pattern, ordered by
// ValueID. The pattern uses backslash escaping, so a literal underscore is
// written `\_` (the digital convention `%\_DC` relies on this). max of zero
// means no limit.
func (d *DB) Tags(ctx context.Context, pattern string, max int) ([]TagDescriptor, error) {
	query := `
		SELECT ValueID, ValueName, ISNULL(CompPrecision, 0), ISNULL(CompressionMode, 0), ISNULL(VarType, 0)
		FROM dbo.Archive WITH (NOLOCK)
		WHERE ValueName LIKE @p1 ESCAPE '\'
		ORDER BY ValueID`
	args := []any{pattern}

	if max > 0 {
		query = `
		SELECT TOP (@p2) ValueID, ValueName, ISNULL(CompPrecision, 0), ISNULL(CompressionMode, 0), ISNULL(VarType, 0)
		FROM dbo.Archive WITH (NOLOCK)
		WHERE ValueName LIKE @p1 ESCAPE '\'
		ORDER BY ValueID`
		args = append(args, max)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tags %q: %w", pattern, err)
	}
	defer rows.Close()

	var tags []TagDescriptor
	for rows.Next() {
		var tag TagDescriptor
		if err := rows.Scan(&tag.ValueID, &tag.Name, &tag.Precision, &tag.CompressionMode, &tag.VarType); err != nil {
			return nil, fmt.Errorf("scan tag row: %w", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tag rows: %w", err)
	}

	return tags, nil
}

// Blocks streams a tag's compressed blocks in Timebegin order, calling fn
// for each. Iteration stops on the first fn error, which is returned.
// max of zero means all blocks.
func (d *DB) Blocks(ctx context.Context, valueID int32, max int, fn func(blob.CompressedBlock) error) error {
	query := `
		SELECT Timebegin, Timeend, BinValues
		FROM dbo.TagCompressed WITH (NOLOCK)
		WHERE ValueID = @p1
		ORDER BY Timebegin`
	args := []any{valueID}

	if max > 0 {
		query = `
		SELECT TOP (@p2) Timebegin, Timeend, BinValues
		FROM dbo.TagCompressed WITH (NOLOCK)
		WHERE ValueID = @p1
		ORDER BY Timebegin`
		args = append(args, max)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("query blocks for tag %d: %w", valueID, err)
	}
	defer rows.Close()

	for rows.Next() {
		blk := blob.CompressedBlock{ValueID: valueID}
		if err := rows.Scan(&blk.TimeBegin, &blk.TimeEnd, &blk.Payload); err != nil {
			return fmt.Errorf("scan block row: %w", err)
		}
		// Archive timestamps are stored without zone; treat them as UTC.
		blk.TimeBegin = blk.TimeBegin.UTC()
		blk.TimeEnd = blk.TimeEnd.UTC()

		if err := fn(blk); err != nil {
			return err
		}
	}

	return rows.Err()
}
