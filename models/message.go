package models

import "time"

// Message is a threaded note between admin and customer on a request.
// Both FKs are restrict-on-delete so the thread survives as an audit trail;
// deleting a request with messages is refused by the database.
type Message struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Text      string    `gorm:"size:2000;not null" json:"text"`
	ImageURL  *string   `gorm:"size:500" json:"image_url"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	RequestID string    `gorm:"size:36;not null" json:"request_id"`
	Request   Request   `gorm:"foreignKey:RequestID;constraint:OnDelete:RESTRICT" json:"-"`
	UserID    string    `gorm:"size:36;not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT" json:"user"`
}
