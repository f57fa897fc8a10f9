package models

// Category represents an expense category.
// It includes a store-assigned identifier and a unique, human-readable name.
type Category struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null;size:100"`
}

func (c *Category) TableName() string {
	return "categories"
}
