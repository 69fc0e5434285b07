package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// CategoryRule assigns a category to transactions whose description
// matches the glob pattern in Match.
type CategoryRule struct {
	DefaultModel
	Category   Category `gorm:"constraint:OnDelete:CASCADE"`
	CategoryID uuid.UUID
	Priority   uint
	Match      string
}

func (r *CategoryRule) BeforeSave(tx *gorm.DB) error {
	r.Match = strings.TrimSpace(r.Match)
	if r.Match == "" {
		return ErrCategoryRuleMatchEmpty
	}

	_, err := findCategory(tx, r.CategoryID)
	return err
}

// Matches reports if the description matches the rule. Matching ignores case.
func (r CategoryRule) Matches(description string) bool {
	return glob.Glob(strings.ToLower(r.Match), strings.ToLower(description))
}

// MatchCategory returns the category ID of the first rule matching the description.
// Rules must be ordered by priority. If no rule matches, uuid.Nil is returned.
func MatchCategory(rules []CategoryRule, description string) uuid.UUID {
	for _, rule := range rules {
		if rule.Matches(description) {
			return rule.CategoryID
		}
	}

	return uuid.Nil
}
