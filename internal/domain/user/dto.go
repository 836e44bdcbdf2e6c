package user

type LoginInput struct {
	Role     string `json:"role" binding:"required" example:"pin"`
	Username string `json:"username" binding:"required" example:"pin_user1"`
	Password string `json:"password" binding:"required" example:"secret"`
}

type CreateUserInput struct {
	Role     string  `json:"role" binding:"required,oneof=user_admin csr pin platform_manager"`
	Username string  `json:"username" binding:"required,min=3,max=80"`
	Password string  `json:"password" binding:"required,min=6"`
	Active   *bool   `json:"active"`
	FullName *string `json:"full_name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone"`
}

type UpdateUserInput struct {
	Role     *string `json:"role" binding:"omitempty,oneof=user_admin csr pin platform_manager"`
	Username *string `json:"username" binding:"omitempty,min=3,max=80"`
	Password *string `json:"password" binding:"omitempty,min=6"`
	Active   *bool   `json:"active"`
	FullName *string `json:"full_name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone"`
}
