package request

type CreateRequestDTO struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	CategoryID  *uint  `json:"category_id"`
}

type UpdateRequestDTO struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	CategoryID  *uint   `json:"category_id"`
	Status      *string `json:"status" binding:"omitempty,oneof=open completed"`
}

// SearchOpenQuery filters the CSR browse view.
type SearchOpenQuery struct {
	CategoryID *uint
	Text       string
	Page       int
	PerPage    int
}
