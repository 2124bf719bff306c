package models

import "leafsmp/internal/shared/constants"

type MessageModel struct {
	ID         uint    `gorm:"primaryKey"`
	TicketID   uint    `gorm:"not null;index"`
	Sender     string  `gorm:"size:10;not null"`
	SenderName string  `gorm:"size:100;not null"`
	Message    *string `gorm:"type:text"`
	ImageURL   *string `gorm:"size:512"`
	CreatedAt  int64   `gorm:"autoCreateTime:false;not null"`
}

func (MessageModel) TableName() string {
	return constants.TableTicketMessages
}
