package models

// RegistryEvent is a published registry event persisted for later inspection.
type RegistryEvent struct {
	Base
	Topic           string `gorm:"not null;index" json:"topic"`
	Payload         string `gorm:"type:text;not null" json:"payload"`
	LedgerTimestamp int64  `gorm:"not null" json:"ledger_timestamp"`
}
