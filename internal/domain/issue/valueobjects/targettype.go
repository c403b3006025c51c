package valueobjects

import (
	"fmt"
	"strings"
)

type TargetType string

const (
	TargetOrder      TargetType = "ORDER"
	TargetRestaurant TargetType = "RESTAURANT"
	TargetShipper    TargetType = "SHIPPER"
	TargetSystem     TargetType = "SYSTEM"
	TargetOther      TargetType = "OTHER"
)

var validTargetTypes = map[TargetType]bool{
	TargetOrder:      true,
	TargetRestaurant: true,
	TargetShipper:    true,
	TargetSystem:     true,
	TargetOther:      true,
}

func (t TargetType) String() string {
	return string(t)
}

func (t TargetType) IsValid() bool {
	return validTargetTypes[t]
}

func (t TargetType) IsShipper() bool {
	return t == TargetShipper
}

// RequiresOrder reports whether an issue with this target must reference an
// order. Platform-wide complaints (SYSTEM, OTHER) stand alone.
func (t TargetType) RequiresOrder() bool {
	return t != TargetSystem && t != TargetOther
}

func NewTargetType(s string) (TargetType, error) {
	t := TargetType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("invalid target type: %s", s)
	}
	return t, nil
}
