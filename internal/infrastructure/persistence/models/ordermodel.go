package models

// OrderModel is the persistence shape of the order aggregate.
type OrderModel struct {
	ID                       uint   `gorm:"primaryKey"`
	CustomerID               uint   `gorm:"not null;index"`
	RestaurantID             uint   `gorm:"not null;index"`
	RestaurantOwnerID        uint   `gorm:"not null;index"`
	ShipperID                *uint  `gorm:"index"`
	Status                   string `gorm:"size:20;not null;index"`
	EstimatedDeliveryMinutes *int
	RestaurantAcceptedAt     *int64
	ShippedAt                *int64
	DeliveryStartedAt        *int64
	CompletedAt              *int64
	CreatedAt                int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt                int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (OrderModel) TableName() string {
	return "orders"
}
