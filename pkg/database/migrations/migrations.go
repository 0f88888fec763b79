package migrations

import (
	"casamento/app/models/gift"
	"casamento/app/models/guest"
	"casamento/app/models/message"
	"casamento/app/models/pixkey"
	"casamento/app/models/user"
)

// RegisterTables returns the models the auto-migration keeps in sync.
func RegisterTables() []interface{} {
	return []interface{}{
		&guest.Guest{},
		&pixkey.PixKey{},
		&gift.Gift{},
		&message.Message{},
		&user.User{},
	}
}
