package categories

// CategoryDTO is the wire representation of a category. The ID is a
// pointer so a not-yet-persisted category serializes as "id": null.
type CategoryDTO struct {
	ID   *uint  `json:"id"`
	Name string `json:"name" validate:"required"`
}
