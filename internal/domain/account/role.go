package account

import "strings"

// Role identifies what an actor may do in the marketplace.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleOwner    Role = "OWNER"
	RoleShipper  Role = "SHIPPER"
	RoleAdmin    Role = "ADMIN"
)

var validRoles = map[Role]bool{
	RoleCustomer: true,
	RoleOwner:    true,
	RoleShipper:  true,
	RoleAdmin:    true,
}

// NormalizeRole maps a raw role string to a canonical Role: trimmed,
// upper-cased, with any "ROLE_" prefix stripped.
func NormalizeRole(s string) Role {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	normalized = strings.TrimPrefix(normalized, "ROLE_")
	return Role(normalized)
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func (r Role) IsOwner() bool {
	return r == RoleOwner
}

func (r Role) IsShipper() bool {
	return r == RoleShipper
}

func (r Role) IsCustomer() bool {
	return r == RoleCustomer
}
