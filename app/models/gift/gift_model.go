// Package gift holds the registry items guests can pay for via PIX.
package gift

import (
	"casamento/app/models"
	"casamento/app/models/pixkey"
)

// Gift is one registry item. The payment destination is either a free-text
// PIX key typed directly on the gift or a reference to a stored PixKey; the
// admin UI treats the two as mutually exclusive but the data layer does not
// enforce it, and PixKeyID wins when both are present.
type Gift struct {
	ID          uint64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string   `gorm:"type:varchar(100)" json:"name"`
	Description string   `gorm:"type:text" json:"description"`
	Price       *float64 `gorm:"type:decimal(10,2)" json:"price"`

	PixKeyRaw string         `gorm:"type:varchar(140)" json:"pix_key_raw"`
	PixKeyID  *uint64        `gorm:"index" json:"pix_key_id"`
	PixKey    *pixkey.PixKey `gorm:"foreignKey:PixKeyID" json:"pix_key,omitempty"`

	ImageURL string `gorm:"type:text" json:"image_url"`

	models.CommonTimestampsField
}

// TableName sets the table name.
func (Gift) TableName() string {
	return "gifts"
}

// KeyValue resolves the effective PIX key for this gift, or "" when none is
// set.
func (g Gift) KeyValue() string {
	if g.PixKey != nil && g.PixKey.KeyValue != "" {
		return g.PixKey.KeyValue
	}
	return g.PixKeyRaw
}
