package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"simpasar/internal/models"
	"simpasar/internal/services/sequence"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SequenceStore is the durable per-prefix counter behind the code
// sequencer. NextValue runs inside a transaction and takes a row lock on
// the prefix's counter row, so concurrent mints for the same prefix
// serialize instead of reading the same last value.
type SequenceStore struct {
	db *gorm.DB
}

func NewSequenceStore(db *gorm.DB) *SequenceStore {
	return &SequenceStore{db: db}
}

func (s *SequenceStore) NextValue(ctx context.Context, prefix string) (int64, error) {
	var next int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var seq models.CodeSequence
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("prefix = ?", prefix).
			First(&seq).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// First mint for this prefix. Two transactions can reach this
			// point at once (the unlocked row does not exist yet), so the
			// seed insert must tolerate losing that race: ON CONFLICT DO
			// NOTHING keeps the loser's transaction alive, and the locked
			// re-read below picks up whichever row won.
			last, seedErr := s.seedFromExistingCodes(tx, prefix)
			if seedErr != nil {
				return seedErr
			}
			seq = models.CodeSequence{Prefix: prefix, LastValue: last}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&seq).Error; err != nil {
				return err
			}
			err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("prefix = ?", prefix).
				First(&seq).Error
		}
		if err != nil {
			return err
		}

		seq.LastValue++
		next = seq.LastValue
		return tx.Model(&models.CodeSequence{}).
			Where("prefix = ?", prefix).
			Update("last_value", seq.LastValue).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, fmt.Errorf("sequence %s: %w", prefix, sequence.ErrCodeCollision)
		}
		return 0, fmt.Errorf("sequence %s: %w", prefix, err)
	}
	return next, nil
}

// seedFromExistingCodes bootstraps a fresh counter row from records that
// predate the counter table: it reads the maximal code sharing the prefix
// from the table that owns that code family and parses its numeric
// suffix. Fixed-width zero-padded suffixes sort the same lexicographically
// and numerically, so a plain descending sort finds the latest code.
func (s *SequenceStore) seedFromExistingCodes(tx *gorm.DB, prefix string) (int64, error) {
	table, column := codeFamily(prefix)

	var code string
	err := tx.Table(table).
		Select(column).
		Where(column+" LIKE ?", prefix+"%").
		Order(column + " DESC").
		Limit(1).
		Scan(&code).Error
	if err != nil {
		return 0, err
	}
	if len(code) <= len(prefix) {
		return 0, nil
	}

	suffix, err := strconv.ParseInt(code[len(prefix):], 10, 64)
	if err != nil {
		// Unparsable legacy suffix restarts the scope at zero.
		return 0, nil
	}
	return suffix, nil
}

// codeFamily maps a prefix to the table and column holding the codes of
// that family. Date-scoped prefixes match on their constant lead; a
// prefix containing LAP is a stall code; anything else is a market-scoped
// admin user code.
func codeFamily(prefix string) (table, column string) {
	switch {
	case strings.HasPrefix(prefix, "INV"):
		return "invoices", "invoice_code"
	case strings.HasPrefix(prefix, "IU"):
		return "dues", "due_code"
	case strings.HasPrefix(prefix, "CUST"):
		return "vendors", "vendor_code"
	case prefix == "PSR":
		return "markets", "market_code"
	case strings.HasPrefix(prefix, "TYPE"):
		return "stall_types", "type_code"
	case strings.Contains(prefix, "LAP"):
		return "stalls", "stall_code"
	default:
		// USR and full market codes both scope admin user codes.
		return "users", "user_code"
	}
}
