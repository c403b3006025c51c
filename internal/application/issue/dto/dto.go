// Package dto carries the read-side representations returned by the issue
// workflow usecases.
package dto

import (
	"time"

	"dishpatch/internal/domain/issue"
	"dishpatch/internal/domain/order"
)

type IssueDTO struct {
	ID                uint       `json:"id"`
	Code              string     `json:"code"`
	OrderID           *uint      `json:"order_id,omitempty"`
	CreatedByID       uint       `json:"created_by_id"`
	CreatedByRole     string     `json:"created_by_role"`
	TargetType        string     `json:"target_type"`
	TargetID          *uint      `json:"target_id,omitempty"`
	TargetNote        string     `json:"target_note,omitempty"`
	Category          string     `json:"category"`
	OtherCategory     string     `json:"other_category,omitempty"`
	Title             string     `json:"title"`
	Description       string     `json:"description,omitempty"`
	AssignedOwnerID   *uint      `json:"assigned_owner_id,omitempty"`
	AssignedAdminID   *uint      `json:"assigned_admin_id,omitempty"`
	Status            string     `json:"status"`
	OwnerRefundStatus string     `json:"owner_refund_status"`
	OwnerRefundAmount *int64     `json:"owner_refund_amount,omitempty"`
	AdminCreditStatus string     `json:"admin_credit_status"`
	AdminCreditAmount *int64     `json:"admin_credit_amount,omitempty"`
	ResolvedReason    string     `json:"resolved_reason,omitempty"`
	ResolvedAt        *time.Time `json:"resolved_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type EventDTO struct {
	ID            uint      `json:"id"`
	IssueID       uint      `json:"issue_id"`
	AccountID     uint      `json:"account_id"`
	AccountRole   string    `json:"account_role"`
	Type          string    `json:"type"`
	Content       string    `json:"content,omitempty"`
	OldValue      string    `json:"old_value,omitempty"`
	NewValue      string    `json:"new_value,omitempty"`
	Amount        *int64    `json:"amount,omitempty"`
	AttachmentURL string    `json:"attachment_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// OrderSummaryDTO is the slim order view embedded in an issue detail.
type OrderSummaryDTO struct {
	ID                uint       `json:"id"`
	Status            string     `json:"status"`
	CustomerID        uint       `json:"customer_id"`
	RestaurantID      uint       `json:"restaurant_id"`
	RestaurantOwnerID uint       `json:"restaurant_owner_id"`
	ShipperID         *uint      `json:"shipper_id,omitempty"`
	ShippedAt         *time.Time `json:"shipped_at,omitempty"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
}

type IssueDetailDTO struct {
	Issue  IssueDTO         `json:"issue"`
	Events []EventDTO       `json:"events"`
	Order  *OrderSummaryDTO `json:"order,omitempty"`
}

func ToIssueDTO(i *issue.Issue) IssueDTO {
	return IssueDTO{
		ID:                i.ID(),
		Code:              i.Code(),
		OrderID:           i.OrderID(),
		CreatedByID:       i.CreatedByID(),
		CreatedByRole:     i.CreatedByRole().String(),
		TargetType:        i.TargetType().String(),
		TargetID:          i.TargetID(),
		TargetNote:        i.TargetNote(),
		Category:          i.Category().String(),
		OtherCategory:     i.OtherCategory(),
		Title:             i.Title(),
		Description:       i.Description(),
		AssignedOwnerID:   i.AssignedOwnerID(),
		AssignedAdminID:   i.AssignedAdminID(),
		Status:            i.Status().String(),
		OwnerRefundStatus: i.OwnerRefundStatus().String(),
		OwnerRefundAmount: i.OwnerRefundAmount(),
		AdminCreditStatus: i.AdminCreditStatus().String(),
		AdminCreditAmount: i.AdminCreditAmount(),
		ResolvedReason:    i.ResolvedReason(),
		ResolvedAt:        i.ResolvedAt(),
		CreatedAt:         i.CreatedAt(),
		UpdatedAt:         i.UpdatedAt(),
	}
}

func ToEventDTO(e *issue.Event) EventDTO {
	return EventDTO{
		ID:            e.ID(),
		IssueID:       e.IssueID(),
		AccountID:     e.AccountID(),
		AccountRole:   e.AccountRole().String(),
		Type:          e.Type().String(),
		Content:       e.Content(),
		OldValue:      e.OldValue(),
		NewValue:      e.NewValue(),
		Amount:        e.Amount(),
		AttachmentURL: e.AttachmentURL(),
		CreatedAt:     e.CreatedAt(),
	}
}

func ToEventDTOs(events []*issue.Event) []EventDTO {
	out := make([]EventDTO, 0, len(events))
	for _, e := range events {
		out = append(out, ToEventDTO(e))
	}
	return out
}

func ToOrderSummaryDTO(o *order.Order) *OrderSummaryDTO {
	if o == nil {
		return nil
	}
	return &OrderSummaryDTO{
		ID:                o.ID(),
		Status:            o.Status().String(),
		CustomerID:        o.CustomerID(),
		RestaurantID:      o.RestaurantID(),
		RestaurantOwnerID: o.RestaurantOwnerID(),
		ShipperID:         o.ShipperID(),
		ShippedAt:         o.ShippedAt(),
		CompletedAt:       o.CompletedAt(),
	}
}
