package account

import (
	"fmt"
	"time"
)

// CourierStatus is the availability state of a shipper account.
type CourierStatus string

const (
	CourierOnline  CourierStatus = "ONLINE"
	CourierBusy    CourierStatus = "BUSY"
	CourierOffline CourierStatus = "OFFLINE"
)

func (s CourierStatus) String() string {
	return string(s)
}

func (s CourierStatus) IsValid() bool {
	return s == CourierOnline || s == CourierBusy || s == CourierOffline
}

// Account is a read model of an identity the dispute engine acts on behalf
// of. Identity storage and authentication live outside this service; the
// engine only needs the id, role, and courier availability.
type Account struct {
	id            uint
	name          string
	role          Role
	courierStatus CourierStatus
	createdAt     time.Time
	updatedAt     time.Time
}

func NewAccount(name string, role Role) (*Account, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := time.Now().UTC()
	a := &Account{
		name:      name,
		role:      role,
		createdAt: now,
		updatedAt: now,
	}
	if role.IsShipper() {
		a.courierStatus = CourierOffline
	}
	return a, nil
}

func ReconstructAccount(
	id uint,
	name string,
	role Role,
	courierStatus CourierStatus,
	createdAt, updatedAt time.Time,
) (*Account, error) {
	if id == 0 {
		return nil, fmt.Errorf("account ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &Account{
		id:            id,
		name:          name,
		role:          role,
		courierStatus: courierStatus,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (a *Account) ID() uint {
	return a.id
}

func (a *Account) Name() string {
	return a.name
}

func (a *Account) Role() Role {
	return a.role
}

func (a *Account) CourierStatus() CourierStatus {
	return a.courierStatus
}

func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Account) UpdatedAt() time.Time {
	return a.updatedAt
}

func (a *Account) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("account ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("account ID cannot be zero")
	}
	a.id = id
	return nil
}

// SetCourierStatus moves a shipper between availability states.
func (a *Account) SetCourierStatus(status CourierStatus) error {
	if !a.role.IsShipper() {
		return fmt.Errorf("account %d is not a shipper", a.id)
	}
	if !status.IsValid() {
		return fmt.Errorf("invalid courier status: %s", status)
	}

	a.courierStatus = status
	a.updatedAt = time.Now().UTC()
	return nil
}

// IsAvailableForDelivery reports whether a shipper may accept a new order.
func (a *Account) IsAvailableForDelivery() bool {
	return a.role.IsShipper() && a.courierStatus == CourierOnline
}
