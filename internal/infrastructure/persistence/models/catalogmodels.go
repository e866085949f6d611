package models

type ModernizationTypeModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:100;not null;uniqueIndex"`
}

func (ModernizationTypeModel) TableName() string {
	return "modernization_types"
}

type AssigneeModel struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"size:100;not null;uniqueIndex"`
	Email string `gorm:"size:200"`
}

func (AssigneeModel) TableName() string {
	return "assignees"
}
