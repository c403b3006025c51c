package models

// IssueModel is the persistence shape of the dispute aggregate. The code is
// nullable because it embeds the generated id and is written in a second
// step of the same transaction as the insert.
type IssueModel struct {
	ID            uint    `gorm:"primaryKey"`
	Code          *string `gorm:"uniqueIndex;size:50"`
	OrderID       *uint   `gorm:"index"`
	CreatedByID   uint    `gorm:"not null;index"`
	CreatedByRole string  `gorm:"size:20;not null"`
	TargetType    string  `gorm:"size:20;not null"`
	TargetID      *uint
	TargetNote    string `gorm:"type:text"`
	Category      string `gorm:"size:30;not null;index"`
	OtherCategory string `gorm:"size:200"`
	Title         string `gorm:"size:200;not null"`
	Description   string `gorm:"type:text"`

	AssignedOwnerID *uint  `gorm:"index"`
	AssignedAdminID *uint  `gorm:"index"`
	Status          string `gorm:"size:30;not null;index"`

	OwnerRefundStatus string `gorm:"size:20;not null;default:NONE"`
	OwnerRefundAmount *int64
	AdminCreditStatus string `gorm:"size:20;not null;default:NONE"`
	AdminCreditAmount *int64

	ResolvedReason string `gorm:"type:text"`
	ResolvedAt     *int64
	CreatedAt      int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (IssueModel) TableName() string {
	return "issues"
}

// IssueEventModel rows are insert-only; nothing ever updates or deletes
// them once written.
type IssueEventModel struct {
	ID            uint   `gorm:"primaryKey"`
	IssueID       uint   `gorm:"not null;index"`
	AccountID     uint   `gorm:"not null;index"`
	AccountRole   string `gorm:"size:20;not null"`
	EventType     string `gorm:"size:20;not null;index"`
	Content       string `gorm:"type:text"`
	OldValue      string `gorm:"size:50"`
	NewValue      string `gorm:"size:50"`
	Amount        *int64
	AttachmentURL string `gorm:"size:500"`
	CreatedAt     int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (IssueEventModel) TableName() string {
	return "issue_events"
}
