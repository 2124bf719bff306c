package models

import "leafsmp/internal/shared/constants"

// TicketModel timestamps are unix microseconds so that the monotonic
// updatedAt bump survives a round trip.
type TicketModel struct {
	ID                uint    `gorm:"primaryKey"`
	Number            string  `gorm:"uniqueIndex;size:32;not null"`
	Sequence          int64   `gorm:"not null"`
	MinecraftUsername string  `gorm:"size:100;not null"`
	DiscordUsername   string  `gorm:"size:100;not null"`
	SelectedRank      string  `gorm:"size:64;not null"`
	Status            string  `gorm:"size:20;not null;index"`
	Priority          string  `gorm:"size:20;not null"`
	Category          string  `gorm:"size:64;not null"`
	AdminNotes        *string `gorm:"type:text"`
	CreatedAt         int64   `gorm:"autoCreateTime:false;not null"`
	UpdatedAt         int64   `gorm:"autoUpdateTime:false;not null"`
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

// TicketStatusCount is one row of a GROUP BY status query.
type TicketStatusCount struct {
	Status string
	Total  int64
}
