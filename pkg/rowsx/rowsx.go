package rowsx

import (
	"database/sql"
	"fmt"
	"iter"
)

// Scanner turns the current row into a T.
type Scanner[T any] func(*sql.Rows) (T, error)

// Seq yields one value per row. Rows are closed when iteration finishes,
// when the caller stops early, or after the first error. A scan error or
// rows.Err() is yielded as the final pair with a zero T.
func Seq[T any](rows *sql.Rows, scan Scanner[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		defer rows.Close()
		for rows.Next() {
			v, err := scan(rows)
			if err != nil {
				var zero T
				yield(zero, fmt.Errorf("scan row: %w", err))
				return
			}
			if !yield(v, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			var zero T
			yield(zero, fmt.Errorf("iterate rows: %w", err))
		}
	}
}

// Collect drains rows into a slice, stopping at the first error.
func Collect[T any](rows *sql.Rows, scan Scanner[T]) ([]T, error) {
	var out []T
	for v, err := range Seq(rows, scan) {
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}
