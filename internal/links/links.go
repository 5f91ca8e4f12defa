// AngelaMos | 2026
// links.go

package links

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/folio-api/internal/core"
)

// Manager maintains the set of skills linked to one parent entity through a
// junction table. Updates are full-replace: callers pass the complete desired
// set every time, never a diff.
type Manager struct {
	table        string
	parentColumn string
}

func NewManager(table, parentColumn string) Manager {
	return Manager{table: table, parentColumn: parentColumn}
}

// Replace deletes every junction row for the parent and reinserts the given
// skill ids. It must run inside the caller's transaction so a failed insert
// rolls the delete back instead of leaving the parent with zero links.
// Duplicate ids in the input collapse to one row; ON CONFLICT DO NOTHING
// backstops the unique-pair constraint.
func (m Manager) Replace(
	ctx context.Context,
	db core.DBTX,
	parentID int64,
	skillIDs []int64,
) error {
	deleteQuery := fmt.Sprintf(
		"DELETE FROM %s WHERE %s = $1",
		m.table, m.parentColumn,
	)

	if _, err := db.ExecContext(ctx, deleteQuery, parentID); err != nil {
		return fmt.Errorf("clear links for %s: %w", m.table, err)
	}

	if len(skillIDs) == 0 {
		return nil
	}

	insertQuery := fmt.Sprintf(
		"INSERT INTO %s (%s, skill_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		m.table, m.parentColumn,
	)

	for _, skillID := range Dedupe(skillIDs) {
		if _, err := db.ExecContext(ctx, insertQuery, parentID, skillID); err != nil {
			return fmt.Errorf(
				"link skill %d in %s: %w", skillID, m.table, err,
			)
		}
	}

	return nil
}

// SkillIDs returns the linked skill ids for one parent, for embedding as a
// derived field on entity responses.
func (m Manager) SkillIDs(
	ctx context.Context,
	db core.DBTX,
	parentID int64,
) ([]int64, error) {
	query := fmt.Sprintf(
		"SELECT skill_id FROM %s WHERE %s = $1",
		m.table, m.parentColumn,
	)

	ids := make([]int64, 0)
	if err := db.SelectContext(ctx, &ids, query, parentID); err != nil {
		return nil, fmt.Errorf("linked skill ids for %s: %w", m.table, err)
	}

	return ids, nil
}

// LinkedSkill is a full skill row reached through the junction table.
type LinkedSkill struct {
	ID          int64   `db:"id"`
	Label       string  `db:"label"`
	ImgSrc      *string `db:"imgSrc"`
	Description *string `db:"description"`
}

// LinkedSkills returns the full skill rows for one parent in no guaranteed
// order; callers needing a specific order sort on their side.
func (m Manager) LinkedSkills(
	ctx context.Context,
	db core.DBTX,
	parentID int64,
) ([]LinkedSkill, error) {
	query := fmt.Sprintf(`
		SELECT s.id, s.label, s."imgSrc", s.description
		FROM skills s
		JOIN %s j ON j.skill_id = s.id
		WHERE j.%s = $1`,
		m.table, m.parentColumn,
	)

	skills := make([]LinkedSkill, 0)
	if err := db.SelectContext(ctx, &skills, query, parentID); err != nil {
		return nil, fmt.Errorf("linked skills for %s: %w", m.table, err)
	}

	return skills, nil
}

// Dedupe collapses repeated ids, keeping first-occurrence order. Handlers use
// it so echoed skill_ids match the junction rows actually stored.
func Dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
