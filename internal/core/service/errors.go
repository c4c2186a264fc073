package service

import (
	"errors"

	"github.com/recordhub/records-api/internal/core/domain"
)

// conflictID picks the id to report for a failed update: the id the record was
// being moved to when it collided, the addressed id otherwise.
func conflictID(err error, pathID, newID int64) int64 {
	if errors.Is(err, domain.ErrDuplicateKey) {
		return newID
	}
	return pathID
}
