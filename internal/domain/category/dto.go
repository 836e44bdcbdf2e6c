package category

type CreateCategoryDTO struct {
	Name string `json:"name" binding:"required,max=80"`
}

type UpdateCategoryDTO struct {
	Name string `json:"name" binding:"required,max=80"`
}
