package validation

import (
	"context"
	"fmt"
	"regexp"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// UniqueChecker answers "is this value free" for a named table and column.
type UniqueChecker struct {
	db *gorm.DB
}

func NewUniqueChecker(db *gorm.DB) *UniqueChecker {
	return &UniqueChecker{db: db}
}

func (u *UniqueChecker) IsUnique(ctx context.Context, table, field string, value any) (bool, error) {
	if !identifierPattern.MatchString(table) || !identifierPattern.MatchString(field) {
		return false, fmt.Errorf("invalid identifier %q.%q", table, field)
	}

	var count int64
	err := u.db.WithContext(ctx).
		Table(table).
		Where(clause.Eq{Column: clause.Column{Name: field}, Value: value}).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
