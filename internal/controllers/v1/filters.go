package v1

import (
	"fmt"
	"strings"

	"github.com/finance-tracker/backend/internal/models"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// containsCondition is a condition for the column containing the
// pattern returned by containsPattern, ignoring case.
func containsCondition(column string) string {
	return fmt.Sprintf(`%s(%s) LIKE ? ESCAPE '\'`, models.FoldFunction, column)
}

// containsPattern escapes the wildcards in value for use with containsCondition.
func containsPattern(value string) string {
	return fmt.Sprintf("%%%s%%", likeEscaper.Replace(models.Fold(value)))
}

// stringFilter filters for value being contained in the column. If the
// query parameter is set, but empty, it filters for the column being empty.
func stringFilter(query *gorm.DB, setFields []string, field, column, value string) *gorm.DB {
	if value != "" {
		return query.Where(containsCondition(column), containsPattern(value))
	}

	if slices.Contains(setFields, field) {
		return query.Where(fmt.Sprintf("%s = ''", column))
	}

	return query
}

// searchFilter filters for value being contained in any of the columns.
func searchFilter(db, query *gorm.DB, value string, columns ...string) *gorm.DB {
	if value == "" || len(columns) == 0 {
		return query
	}

	search := containsPattern(value)
	condition := db.Where(containsCondition(columns[0]), search)
	for _, column := range columns[1:] {
		condition = condition.Or(containsCondition(column), search)
	}

	return query.Where(condition)
}

// limitFilter sets offset and limit. The limit defaults to 50.
func limitFilter(query *gorm.DB, setFields []string, offset uint, limit int) (*gorm.DB, int) {
	if !slices.Contains(setFields, "Limit") {
		limit = 50
	}

	return query.Offset(int(offset)).Limit(limit), limit
}
