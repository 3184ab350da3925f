package authkey

import "time"

type AuthKey struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"size:64;uniqueIndex;not null" json:"key"`
	Owner     string    `gorm:"size:100;not null" json:"owner"`
	Role      string    `gorm:"size:20;not null;default:viewer" json:"role"`
	Deleted   bool      `gorm:"not null;default:false" json:"deleted"`
	CreatedAt time.Time `json:"createdAt"`
}

func (AuthKey) TableName() string {
	return "auth_keys"
}
