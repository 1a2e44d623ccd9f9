package flatfile

import (
	"database/sql"
	"fmt"

	"github.com/odvcencio/prodx/pkg/rowsx"
)

// DecodeRows reads every row of a query result as a Record keyed by column
// name. rows is closed on return.
func DecodeRows(rows *sql.Rows) ([]Record, error) {
	cols, err := rows.Columns()
	if err != nil {
		rows.Close()
		return nil, fmt.Errorf("decode rows: %w", err)
	}
	return rowsx.Collect(rows, func(r *sql.Rows) (Record, error) {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := r.Scan(ptrs...); err != nil {
			return nil, err
		}
		rec := make(Record, len(cols))
		for i, c := range cols {
			if b, ok := vals[i].([]byte); ok {
				rec[c] = string(b)
				continue
			}
			rec[c] = vals[i]
		}
		return rec, nil
	})
}
