package user

type SignupInput struct {
	Username    string  `form:"username" json:"username" binding:"required,min=3,max=50" example:"johndoe"`
	Password    string  `form:"password" json:"password" binding:"required,min=6" example:"password123"`
	Email       string  `form:"email" json:"email" binding:"required,email" example:"user@example.com"`
	PhoneNumber *string `form:"phone_number" json:"phone_number" binding:"omitempty,max=15" example:"5551234567"`
	Role        *string `form:"role" json:"role" binding:"omitempty,oneof=user csc technician" example:"user"`
}

type LoginInput struct {
	Username string `form:"username" json:"username" binding:"required" example:"johndoe"`
	Password string `form:"password" json:"password" binding:"required" example:"password123"`
}
