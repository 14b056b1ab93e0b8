package dbmysql

import (
	"time"
)

type TagAction string

const (
	TagActionAdd    TagAction = "add"
	TagActionRemove TagAction = "remove"
)

// TagEvent is one audit row per tag mutation request. Changed is false when
// the request was a no-op (duplicate add, remove of an absent tag).
type TagEvent struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	MessageID string    `gorm:"not null;index;size:24" json:"messageId"`
	ActorID   string    `gorm:"not null;index;size:24" json:"actorId"`
	Tag       string    `gorm:"not null;size:255" json:"tag"`
	Action    TagAction `gorm:"not null;size:10" json:"action"`
	Changed   bool      `gorm:"not null" json:"changed"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (TagEvent) TableName() string {
	return "tag_events"
}
