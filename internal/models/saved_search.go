package models

import "time"

// SavedSearch is a named snapshot of a researcher-directory search: free-text
// query, the multi-select filter sets, and the sort option. Reapplying a
// saved search replaces the whole search state, so the snapshot is complete.
type SavedSearch struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"not null;index" json:"user_id"`
	Name             string    `gorm:"not null" json:"name"`
	Query            string    `json:"query"`
	InstitutionTypes []string  `gorm:"serializer:json" json:"institution_types"`
	FundingStatuses  []string  `gorm:"serializer:json" json:"funding_statuses"`
	Regions          []string  `gorm:"serializer:json" json:"regions"`
	ActiveOnly       bool      `json:"active_only"`
	SortBy           string    `json:"sort_by"`
	CreatedAt        time.Time `json:"created_at"`
}
