package domain

// Association is the many-to-many link between a company and a category.
type Association struct {
	ID         int64 `json:"id"`
	CompanyID  int64 `json:"company_id"`
	CategoryID int64 `json:"category_id"`
}

// AssociationRow is one joined row of the association view as read from
// the store (category and company columns flattened side by side).
type AssociationRow struct {
	CategoryID       int64
	CategoryName     string
	CategoryActive   bool
	CompanyID        int64
	CompanyName      string
	CompanyAssociate bool
	CompanyActive    bool
}

// CategoryAssociations groups the companies linked to one category.
type CategoryAssociations struct {
	Category  Category  `json:"category"`
	Companies []Company `json:"companies"`
}
