package issue

import (
	"dishpatch/internal/domain/account"
	"dishpatch/internal/domain/order"
)

// Actor is the account performing an operation, with its role normalized.
type Actor struct {
	ID   uint
	Role account.Role
}

// capability declares what one role may do, expressed as relationship
// checks against the linked order. Keeping the matrix declarative keeps the
// rules independently testable.
type capability struct {
	// accessAny grants access to every issue regardless of linkage.
	accessAny bool
	// relatedToOrder decides order-scoped access for the role.
	relatedToOrder func(actorID uint, ord *order.Order) bool
	// createUnlinked allows filing SYSTEM/OTHER issues with no order.
	createUnlinked bool
}

var capabilities = map[account.Role]capability{
	account.RoleAdmin: {
		accessAny:      true,
		createUnlinked: true,
	},
	account.RoleCustomer: {
		relatedToOrder: func(actorID uint, ord *order.Order) bool {
			return ord.CustomerID() == actorID
		},
		createUnlinked: true,
	},
	account.RoleShipper: {
		relatedToOrder: func(actorID uint, ord *order.Order) bool {
			return ord.ShipperID() != nil && *ord.ShipperID() == actorID
		},
	},
	account.RoleOwner: {
		relatedToOrder: func(actorID uint, ord *order.Order) bool {
			return ord.RestaurantOwnerID() == actorID
		},
	},
}

// CanAccess decides whether the actor may read or act on an existing issue.
// The creator always keeps access, even after reassignment. When no order
// is linked, only the creator and admins qualify.
func CanAccess(actor Actor, iss *Issue, ord *order.Order) bool {
	cap, ok := capabilities[actor.Role]
	if !ok {
		return false
	}
	if cap.accessAny {
		return true
	}
	if iss.CreatedByID() == actor.ID {
		return true
	}
	if ord == nil {
		return false
	}
	return cap.relatedToOrder != nil && cap.relatedToOrder(actor.ID, ord)
}

// CanCreate decides whether the actor may file a new issue. Order-linked
// creation requires the role's relationship to that order; unlinked
// creation (SYSTEM/OTHER targets) is reserved for customers and admins.
func CanCreate(actor Actor, ord *order.Order) bool {
	cap, ok := capabilities[actor.Role]
	if !ok {
		return false
	}
	if ord == nil {
		return cap.createUnlinked
	}
	if cap.accessAny {
		return true
	}
	return cap.relatedToOrder != nil && cap.relatedToOrder(actor.ID, ord)
}
