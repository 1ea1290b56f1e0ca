// Package pgutil holds the query helpers shared by the GORM repositories.
package pgutil

import (
	"errors"
	"strings"

	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern builds a case-insensitive LIKE pattern matching s anywhere.
// Use it with "LOWER(column) LIKE ?".
func ContainsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(s))) + "%"
}

// NotFound maps gorm.ErrRecordNotFound to errs.ObjectNotFoundError and
// returns other errors unchanged. The connection must be opened with
// TranslateError for duplicate keys to surface as gorm.ErrDuplicatedKey.
func NotFound(err error, entity string, id any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundErrorWithCause(entity, id, err)
	}
	return err
}

// Deleted reports a delete that matched no row as not found.
func Deleted(result *gorm.DB, entity string, id any) error {
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(entity, id)
	}
	return nil
}
