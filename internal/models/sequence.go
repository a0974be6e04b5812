package models

import "time"

// CodeSequence is the per-prefix counter backing the code sequencer.
// One row per prefix, updated under a row lock, so two concurrent mints
// for the same prefix serialize on the row instead of racing a
// read-max-then-insert scan.
type CodeSequence struct {
	Prefix    string `gorm:"primaryKey;size:64"`
	LastValue int64  `gorm:"not null;default:0"`
	UpdatedAt time.Time
}
