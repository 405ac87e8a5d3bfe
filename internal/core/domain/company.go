package domain

// Company is a partner organisation. Associate flips to true the first
// time the company is linked to a category.
type Company struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Associate bool   `json:"associate"`
	Active    bool   `json:"active"`
}
