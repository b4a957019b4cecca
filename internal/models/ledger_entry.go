package models

import "time"

// LedgerEntry is one key of the registry's persistent key/value space when it
// is backed by a SQL database.
type LedgerEntry struct {
	Key       string    `gorm:"column:entry_key;primaryKey;size:191" json:"key"`
	Value     []byte    `gorm:"not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
