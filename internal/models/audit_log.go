package models

// AuditLog records administrative registry operations for compliance.
type AuditLog struct {
	Base
	Caller       string `gorm:"not null;index" json:"caller"`
	Action       string `gorm:"not null" json:"action"`
	ResourceType string `gorm:"not null" json:"resource_type"`
	ResourceID   string `json:"resource_id"`
	IPAddress    string `json:"ip_address"`
	Changes      string `json:"changes,omitempty"`
}
