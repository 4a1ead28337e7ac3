package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// swagger:model
type BaseModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PublicBase 带对外公开ID的基础模型
// 公开ID用于所有外部引用，内部自增ID不对外暴露
type PublicBase struct {
	BaseModel
	PublicID string `gorm:"type:varchar(36);uniqueIndex;not null" json:"public_id"`
}

func (b *PublicBase) BeforeCreate(tx *gorm.DB) (err error) {
	if b.PublicID == "" {
		b.PublicID = uuid.New().String()
	}
	return
}

func GenerateUUID() string {
	return uuid.New().String()
}
