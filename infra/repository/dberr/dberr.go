// Package dberr maps GORM errors to domain errors for the repositories.
package dberr

import (
	"errors"

	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain"
	"gorm.io/gorm"
)

// Rule maps a GORM sentinel found in an error chain to a domain error.
type Rule struct {
	Cause error
	As    error
}

// MissingReference reports an insert whose parent row does not exist.
var MissingReference = Rule{Cause: gorm.ErrForeignKeyViolated, As: domain.ErrNotFound}

// A foreign key violation on delete means dependent rows still exist,
// which is a conflict.
var defaults = []Rule{
	{Cause: gorm.ErrDuplicatedKey, As: domain.ErrAlreadyExists},
	{Cause: gorm.ErrRecordNotFound, As: domain.ErrNotFound},
	{Cause: gorm.ErrForeignKeyViolated, As: domain.ErrAlreadyExists},
}

// Map converts err to a domain error. Rules are tried before the defaults,
// so a repository can refine a cause to its own sentinel. Errors with no
// matching rule are returned unchanged.
func Map(err error, rules ...Rule) error {
	if err == nil {
		return nil
	}
	for _, set := range [][]Rule{rules, defaults} {
		for _, r := range set {
			if errors.Is(err, r.Cause) {
				return r.As
			}
		}
	}
	return err
}

// Wrap runs a GORM operation and maps its error.
//
//	err := dberr.Wrap(func() error {
//	    return r.db.WithContext(ctx).Create(u).Error
//	})
func Wrap(op func() error, rules ...Rule) error {
	return Map(op(), rules...)
}
