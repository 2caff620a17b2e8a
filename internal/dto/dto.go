package dto

import (
	"time"

	"wholesale-portal/internal/model"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Company  string `json:"company"`
}

type AuthUser struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type AuthResponse struct {
	User  AuthUser `json:"user"`
	Token string   `json:"token"`
}

type UserProfile struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type UpdateProfileRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

type CreateUserRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Name    string `json:"name"`
	Company string `json:"company"`
}

type OrdersResponse struct {
	Orders []*model.Order `json:"orders"`
}

type ProductsResponse struct {
	Products []*model.Product `json:"products"`
}

type ProductResponse struct {
	Product *model.Product `json:"product"`
}

type ProfileResponse struct {
	Profile *UserProfile `json:"profile"`
}

type UsersResponse struct {
	Users []*UserProfile `json:"users"`
}

type CreateUserResponse struct {
	User    *UserProfile `json:"user"`
	Message string       `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
