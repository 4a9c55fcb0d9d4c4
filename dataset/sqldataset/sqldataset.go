package sqldataset

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/feature"
	"github.com/pkg/errors"
)

const (
	// DefaultTable is the name of the table samples are read from
	// unless told otherwise
	DefaultTable = "samples"

	sqlite3Driver  = "sqlite3"
	postgresDriver = "postgres"
	idColumn       = "id"
)

/*
Driver takes a source string and returns the name of the database/sql
driver able to open it, or false if the source is not an SQL database.
*/
func Driver(source string) (string, bool) {
	if strings.HasPrefix(source, "postgresql://") || strings.HasPrefix(source, "postgres://") {
		return postgresDriver, true
	}
	if strings.HasSuffix(source, ".db") {
		return sqlite3Driver, true
	}
	return "", false
}

/*
Open takes a context, a source (an SQLite3 file path or a PostgreSQL
URL), a table name, a schema (that can be nil) and the name of the label
feature and returns a dataset with all the rows of the table, or an error.
See dataset.FromRecords for the handling of the schema and label.
*/
func Open(ctx context.Context, source, table string, schema []feature.Feature, label string) (dataset.Dataset, error) {
	driver, ok := Driver(source)
	if !ok {
		return nil, errors.Errorf("%s is not an SQLite3 file or PostgreSQL URL", source)
	}
	db, err := sqlx.ConnectContext(ctx, driver, source)
	if err != nil {
		return nil, errors.Wrapf(err, "connecting to %s", driver)
	}
	defer db.Close()
	return Load(ctx, db, table, schema, label)
}

/*
Load takes a context, an open database, a table name, a schema (that can
be nil) and the name of the label feature and returns a dataset with all
the rows of the table, or an error.
*/
func Load(ctx context.Context, db *sqlx.DB, table string, schema []feature.Feature, label string) (dataset.Dataset, error) {
	if table == "" {
		table = DefaultTable
	}
	if strings.ContainsAny(table, `"`) {
		return nil, errors.Errorf(`table name '%s' contains invalid character '"'`, table)
	}
	rows, err := db.QueryxContext(ctx, fmt.Sprintf(`SELECT * FROM "%s"`, table))
	if err != nil {
		return nil, errors.Wrapf(err, "querying table %s", table)
	}
	defer rows.Close()
	columns, err := rows.Columns()
	if err != nil {
		return nil, errors.Wrapf(err, "reading columns of table %s", table)
	}
	var header []string
	var positions []int
	for i, c := range columns {
		if c != idColumn {
			header = append(header, c)
			positions = append(positions, i)
		}
	}
	var records [][]string
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return nil, errors.Wrapf(err, "scanning row %d of table %s", len(records), table)
		}
		record := make([]string, 0, len(positions))
		for _, p := range positions {
			v, err := stringValue(values[p])
			if err != nil {
				return nil, errors.Wrapf(err, "row %d of table %s, column %s", len(records), table, columns[p])
			}
			record = append(record, v)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading table %s", table)
	}
	return dataset.FromRecords(header, records, schema, label)
}

func stringValue(v interface{}) (string, error) {
	switch v := v.(type) {
	case nil:
		return "", errors.New("missing value")
	case []byte:
		return string(v), nil
	case string:
		return v, nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	case time.Time:
		return v.Format(time.RFC3339), nil
	}
	return fmt.Sprintf("%v", v), nil
}
