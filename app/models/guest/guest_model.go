// Package guest holds the invited-party model and the confirmation logic
// built on top of it.
package guest

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"casamento/app/models"
)

// Guest is one invited party: the primary invitee plus an optional spouse
// and variable lists of children and companions. Each person is confirmable
// on their own; the spouse's confirmation lives as a sibling boolean on the
// same row, children and companions in sparse name→bool maps.
type Guest struct {
	ID   string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name string `gorm:"type:varchar(100);index" json:"name"`

	Spouse     string   `gorm:"type:varchar(100)" json:"spouse,omitempty"`
	Children   NameList `gorm:"type:json" json:"children"`
	Companions NameList `gorm:"type:json" json:"companions"`

	IsConfirmed             bool            `gorm:"default:false" json:"is_confirmed"`
	SpouseConfirmation      bool            `gorm:"default:false" json:"spouse_confirmation"`
	ChildrenConfirmations   ConfirmationMap `gorm:"type:json" json:"children_confirmations"`
	CompanionsConfirmations ConfirmationMap `gorm:"type:json" json:"companions_confirmations"`

	// Token is the opaque identifier in self-service confirmation links;
	// ConfirmationCode is the human-relayable 6-digit alternative.
	Token            string `gorm:"type:varchar(36);uniqueIndex" json:"token"`
	ConfirmationCode string `gorm:"type:varchar(6);uniqueIndex" json:"confirmation_code"`

	models.CommonTimestampsField
}

// TableName sets the table name.
func (Guest) TableName() string {
	return "guests"
}

// NameList stores an ordered list of names as a JSON column.
type NameList []string

// Value implements driver.Valuer.
func (l NameList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

// Scan implements sql.Scanner.
func (l *NameList) Scan(value interface{}) error {
	if value == nil {
		*l = NameList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.New("invalid type for name list")
}

// ConfirmationMap stores per-name confirmation flags as a JSON column. Keys
// not present in the corresponding name list are stale data and are ignored
// by every consumer.
type ConfirmationMap map[string]bool

// Value implements driver.Valuer.
func (m ConfirmationMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	return string(b), err
}

// Scan implements sql.Scanner.
func (m *ConfirmationMap) Scan(value interface{}) error {
	if value == nil {
		*m = ConfirmationMap{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	}
	return errors.New("invalid type for confirmation map")
}
