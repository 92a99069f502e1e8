package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByCreated       = "created_at"
	orderByPreferredDate = "preferred_date"
	orderByTotalItems    = "total_items"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByCreated:       "created_at DESC, id DESC",
	orderByPreferredDate: "preferred_date ASC, id ASC",
	orderByTotalItems:    "total_items DESC, id DESC",
}

const defaultOrderBy = "created_at DESC, id DESC"

const baseBulkPickupsSelect = "SELECT " + bulkPickupColumns + "\nFROM bulk_pickups"

const countBulkPickupsSelect = "SELECT COUNT(*) FROM bulk_pickups"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a bulk
// pickup listing. It returns the data query, the count query, and the
// positional parameters they share.
func (q *BulkPickupQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", paramIdx))
		args = append(args, string(*q.Status))
		paramIdx++
	}

	if q.UserID != nil {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", paramIdx))
		args = append(args, *q.UserID)
		paramIdx++
	}

	if q.Organization != nil && strings.TrimSpace(*q.Organization) != "" {
		conditions = append(conditions, fmt.Sprintf("organization_name ILIKE $%d", paramIdx))
		args = append(args, "%"+escapeLike(strings.TrimSpace(*q.Organization))+"%")
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	orderClause := defaultOrderBy
	if col, ok := validOrderBy[q.OrderBy]; ok {
		orderClause = col
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseBulkPickupsSelect, whereClause, orderClause, limit, offset,
	)

	countSQL = countBulkPickupsSelect + whereClause

	return dataSQL, countSQL, args
}

// escapeLike escapes the LIKE wildcards in s.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
