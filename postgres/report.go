package postgres

import (
	"context"
	"contactbook/report"

	"gorm.io/gorm"
)

// ReportRepository implements report.Repository interface
type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

type groupCountRow struct {
	GroupName    string
	ContactCount int64
}

// GroupContactCounts counts the members of every group in a single pass over
// groups and links. Groups without members are kept with a zero count.
func (r *ReportRepository) GroupContactCounts(ctx context.Context) ([]report.Entry, error) {
	const sql = `
SELECT g.name AS group_name, COUNT(cg.contact_id) AS contact_count
FROM "groups" g
LEFT JOIN contact_groups cg ON cg.group_id = g.id
GROUP BY g.id, g.name
ORDER BY g.id`

	var rows []groupCountRow
	if err := r.db.WithContext(ctx).Raw(sql).Scan(&rows).Error; err != nil {
		return nil, err
	}

	entries := make([]report.Entry, len(rows))
	for i, row := range rows {
		entries[i] = report.Entry{
			Group:        row.GroupName,
			ContactCount: int(row.ContactCount),
		}
	}
	return entries, nil
}
