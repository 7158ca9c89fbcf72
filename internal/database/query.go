// Package database
package database

import (
	"errors"
	"strings"

	. "github.com/half-nothing/airport-booking/internal/interfaces/operation"
	"gorm.io/gorm"
)

func paginate(page Pagination) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page.PageSize <= 0 {
			return db
		}
		return db.Offset(page.Offset()).Limit(page.PageSize)
	}
}

// search matches text as a case-insensitive substring of any of columns. Both sides are lowered
// so the result does not depend on the column collation.
func search(text string, columns ...string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		text = strings.TrimSpace(text)
		if text == "" || len(columns) == 0 {
			return db
		}
		pattern := "%" + strings.ToLower(text) + "%"
		conditions := make([]string, len(columns))
		args := make([]interface{}, len(columns))
		for i, column := range columns {
			conditions[i] = "LOWER(" + column + ") LIKE ?"
			args[i] = pattern
		}
		return db.Where("("+strings.Join(conditions, " OR ")+")", args...)
	}
}

func equal(column string, value uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if value == 0 {
			return db
		}
		return db.Where(column+" = ?", value)
	}
}

// exists reports whether a row of model with the given id is present
func exists(tx *gorm.DB, model interface{}, id uint) (bool, error) {
	var count int64
	if id == 0 {
		return false, nil
	}
	err := tx.Model(model).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func requireReference(tx *gorm.DB, model interface{}, field string, id uint) error {
	found, err := exists(tx, model, id)
	if err != nil {
		return err
	}
	if !found {
		return &InvalidReferenceError{Field: field, Id: id}
	}
	return nil
}

// taken reports whether another row than excludeId already matches every column value
func taken(tx *gorm.DB, model interface{}, excludeId uint, columns map[string]interface{}) (bool, error) {
	var count int64
	query := tx.Model(model).Where(columns)
	if excludeId != 0 {
		query = query.Where("id <> ?", excludeId)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// translate maps storage errors to domain errors
func translate(err error, notFound error, duplicate *DuplicateEntityError) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case errors.Is(err, gorm.ErrDuplicatedKey) && duplicate != nil:
		return duplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrInvalidReference
	default:
		return err
	}
}

func deleted(result *gorm.DB, notFound error) error {
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound
	}
	return nil
}

// listOf counts every row matching scopes and returns one page of them ordered by id
func listOf[T any](db *gorm.DB, page Pagination, preloads []string, scopes ...func(*gorm.DB) *gorm.DB) (items []*T, total int64, err error) {
	items = make([]*T, 0, max(page.PageSize, 0))
	if err = db.Model(new(T)).Scopes(scopes...).Count(&total).Error; err != nil {
		return
	}
	query := db.Model(new(T)).Scopes(scopes...).Scopes(paginate(page)).Order("id")
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	err = query.Find(&items).Error
	return
}

// checkUnique fails with *DuplicateEntityError when another row already holds values in columns
func checkUnique(tx *gorm.DB, model interface{}, entity string, excludeId uint, columns []string, values ...interface{}) error {
	conditions := make(map[string]interface{}, len(columns))
	for i, column := range columns {
		conditions[column] = values[i]
	}
	found, err := taken(tx, model, excludeId, conditions)
	if err != nil {
		return err
	}
	if found {
		return duplicateOf(entity, columns...)
	}
	return nil
}

func duplicateOf(entity string, columns ...string) *DuplicateEntityError {
	fields := make([]string, len(columns))
	for i, column := range columns {
		fields[i] = strings.TrimSuffix(column, "_id")
	}
	return &DuplicateEntityError{Entity: entity, Fields: fields}
}

func requireName(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &FieldError{Field: field, Reason: "cannot be empty"}
	}
	return nil
}
