package models

type TicketModel struct {
	ID                 uint    `gorm:"primaryKey"`
	SiteName           string  `gorm:"size:200;not null;index"`
	TypeID             *uint   `gorm:"column:modernization_type_id;index"`
	RequestDate        string  `gorm:"size:10;not null"`
	Priority           string  `gorm:"size:20;not null;index"`
	AssigneeID         uint    `gorm:"not null;index"`
	CreatorEmail       string  `gorm:"size:200;not null"`
	DocumentRef        string  `gorm:"column:document_ref;size:255"`
	ExternalCaseNumber *string `gorm:"size:100"`
	ExternalCaseLink   *string `gorm:"size:500"`
	Status             string  `gorm:"size:20;not null;index"`
	CreatedAt          int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt          int64   `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// Catalog references are resolved by joins; dangling references are tolerated.
}

func (TicketModel) TableName() string {
	return "tickets"
}

// TicketViewModel is the join projection used for listing, search and export.
type TicketViewModel struct {
	ID                 uint
	SiteName           string
	TypeName           *string
	RequestDate        string
	Priority           string
	AssigneeID         uint
	AssigneeName       *string
	AssigneeEmail      *string
	CreatorEmail       string
	DocumentRef        string
	ExternalCaseNumber *string
	ExternalCaseLink   *string
	Status             string
	CreatedAt          int64
	UpdatedAt          int64
}
