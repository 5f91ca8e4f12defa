// AngelaMos | 2026
// ordering.go

package catalog

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/folio-api/internal/core"
)

// Ordering maintains a dense integer position column over one table. Gaps are
// permitted: deletion never compacts sibling positions, and rows with a NULL
// position sort after everything else.
type Ordering struct {
	table  string
	column string
	base   int
}

// NewOrdering builds an ordering manager for one collection. The column must
// be passed pre-quoted (e.g. `"order"`) since "order" is a reserved word. The
// base is the position of the first item: 0 for skills and projects, 1 for
// experience. The asymmetry is visible in displayed numbering, so it stays
// configurable instead of being unified.
func NewOrdering(table, column string, base int) Ordering {
	return Ordering{table: table, column: column, base: base}
}

// Next returns the position for an appended row: max(position)+1, or the
// base when the collection is empty or entirely NULL-positioned.
func (o Ordering) Next(ctx context.Context, db core.DBTX) (int, error) {
	query := fmt.Sprintf(
		"SELECT COALESCE(MAX(%s) + 1, %d) FROM %s",
		o.column, o.base, o.table,
	)

	var next int
	if err := db.GetContext(ctx, &next, query); err != nil {
		return 0, fmt.Errorf("next order for %s: %w", o.table, err)
	}

	return next, nil
}

// ApplyReorder assigns position base+i to ids[i] with sequential per-row
// updates. Unknown ids are skipped rather than failing the batch; with
// duplicate ids the last occurrence wins. Rows absent from ids keep their
// previous positions. Callers wrap this in a transaction so concurrent
// reorders cannot interleave per-row.
func (o Ordering) ApplyReorder(
	ctx context.Context,
	db core.DBTX,
	ids []int64,
) error {
	query := fmt.Sprintf(
		"UPDATE %s SET %s = $2 WHERE id = $1",
		o.table, o.column,
	)

	for i, id := range ids {
		if _, err := db.ExecContext(ctx, query, id, o.base+i); err != nil {
			return fmt.Errorf("reorder %s id %d: %w", o.table, id, err)
		}
	}

	return nil
}
