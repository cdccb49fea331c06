package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// RosterService owns every read and write of players, statistics and
// football clubs. Each call runs in its own transaction on a connection
// taken from the pool and returned before the call completes.
type RosterService struct {
	db *gorm.DB
}

func NewRosterService(db *gorm.DB) *RosterService {
	return &RosterService{db: db}
}

// inTx commits when fn returns nil and rolls back on error or panic.
func (s *RosterService) inTx(op string, fn func(tx *gorm.DB) error) error {
	tx := s.db.Begin()
	if tx.Error != nil {
		return &PersistenceError{Op: op, Err: tx.Error}
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return translateDBError(op, err)
	}

	if err := tx.Commit().Error; err != nil {
		return translateDBError(op, err)
	}
	return nil
}

func notFound(err error, format string, args ...interface{}) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf(format+" %w", append(args, ErrNotFound)...)
	}
	return err
}
