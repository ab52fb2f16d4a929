package model

import "time"

// ClientStateModel mirrors the 'client_states' table, a key/value store for the
// values the dashboard keeps between runs.
type ClientStateModel struct {
	Key       string `gorm:"type:varchar(64);primaryKey"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ClientStateModel) TableName() string {
	return "client_states"
}
