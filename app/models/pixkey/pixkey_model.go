// Package pixkey holds the stored PIX payment keys.
package pixkey

import (
	"casamento/app/models"
	"casamento/pkg/pix"
)

// PixKey is a reusable payment destination gifts can point at.
type PixKey struct {
	ID       uint64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string      `gorm:"type:varchar(100)" json:"name"`
	KeyValue string      `gorm:"type:varchar(140);uniqueIndex" json:"key_value"`
	KeyType  pix.KeyType `gorm:"type:varchar(20)" json:"key_type"`

	models.CommonTimestampsField
}

// TableName sets the table name.
func (PixKey) TableName() string {
	return "pix_keys"
}

// Validate checks the key value against its declared type.
func (k PixKey) Validate() error {
	return pix.ValidateKey(k.KeyType, k.KeyValue)
}
