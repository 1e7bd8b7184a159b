package source

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"

	"github.com/young1lin/consolegrid/table"
)

// DB wraps the SQLite database connection
type DB struct {
	*sql.DB
	log logrus.FieldLogger
}

// Open opens the SQLite database at dbPath
func Open(dbPath string, log logrus.FieldLogger) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for better concurrency
	if _, err := sqlDB.Exec("PRAGMA journal_mode=WAL"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if log == nil {
		log = logrus.StandardLogger()
	}
	return &DB{DB: sqlDB, log: log.WithField("path", dbPath)}, nil
}

// QueryGrid runs a query and lays its result set out as a grid. Column
// names become headers, numeric columns are right aligned and NULL renders
// as an empty cell.
func (db *DB) QueryGrid(ctx context.Context, query string, args ...interface{}) (*table.Grid, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to run query: %w", err)
	}
	defer rows.Close()

	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	g := table.NewGrid()
	for _, ct := range types {
		col := g.AddColumn(ct.Name())
		if isNumeric(ct.DatabaseTypeName()) {
			col.Alignment = table.AlignRight
		}
	}

	values := make([]interface{}, len(types))
	ptrs := make([]interface{}, len(types))
	for i := range values {
		ptrs[i] = &values[i]
	}

	count := 0
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		texts := make([]string, len(values))
		for i, v := range values {
			texts[i] = formatValue(v)
		}
		g.AddRow(texts...)
		count++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	db.log.WithFields(logrus.Fields{
		"query":   query,
		"rows":    count,
		"columns": len(types),
	}).Debug("query rendered")
	return g, nil
}

// Import creates table name (if missing) with one TEXT column per header
// and inserts every record in a single transaction
func (db *DB) Import(ctx context.Context, name string, recs *Records) error {
	if len(recs.Header) == 0 {
		return fmt.Errorf("import into %q: %w: a header row is required", name, ErrNoData)
	}

	cols := make([]string, len(recs.Header))
	marks := make([]string, len(recs.Header))
	for i, h := range recs.Header {
		cols[i] = QuoteIdent(h)
		marks[i] = "?"
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin import: %w", err)
	}
	defer tx.Rollback()

	create := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s TEXT)", QuoteIdent(name), strings.Join(cols, " TEXT, "))
	if _, err := tx.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", QuoteIdent(name), strings.Join(cols, ", "), strings.Join(marks, ", "))
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	args := make([]interface{}, len(cols))
	for n, rec := range recs.Rows {
		for i := range args {
			if i < len(rec) {
				args[i] = rec[i]
			} else {
				args[i] = nil
			}
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("failed to insert record %d: %w", n+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	db.log.WithFields(logrus.Fields{"table": name, "rows": len(recs.Rows)}).Info("records imported")
	return nil
}

// QuoteIdent quotes s as an SQLite identifier
func QuoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func isNumeric(declType string) bool {
	t := strings.ToUpper(declType)
	for _, k := range []string{"INT", "REAL", "FLOA", "DOUB", "NUM", "DEC"} {
		if strings.Contains(t, k) {
			return true
		}
	}
	return false
}

func formatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(val)
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return fmt.Sprint(val)
	}
}
