package db_models

type Unit struct {
	BaseModel
	Name string `gorm:"not null;uniqueIndex"`
	Plan Plan   `gorm:"type:varchar(16);not null;default:'free'"`
}
