package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup by identifier matches no row.
var ErrNotFound = errors.New("record not found")

func translateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// findByIDs loads the rows of T whose id is in ids. Missing ids are skipped.
func findByIDs[T any](db *gorm.DB, ids []uuid.UUID, preloads ...string) ([]T, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := db
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	var rows []T
	err := query.Where("id IN ?", uniqueIDs(ids)).Find(&rows).Error
	return rows, err
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
