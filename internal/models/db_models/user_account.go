package db_models

import "github.com/google/uuid"

type UserAccount struct {
	BaseModel
	Username      string `gorm:"not null;uniqueIndex"`
	CredentialRef string `gorm:"not null"`
	DisplayName   string
	Role          Role      `gorm:"type:varchar(16);not null;index"`
	UnitID        uuid.UUID `gorm:"type:uuid;not null;index"`
}
