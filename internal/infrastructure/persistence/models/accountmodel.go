package models

// AccountModel is the persistence shape of the account aggregate.
type AccountModel struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"size:100;not null"`
	Role          string `gorm:"size:20;not null;index"`
	CourierStatus string `gorm:"size:20"`
	CreatedAt     int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt     int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (AccountModel) TableName() string {
	return "accounts"
}
