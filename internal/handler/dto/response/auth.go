package response

import (
	"time"

	"github.com/google/uuid"

	"cusco-tours/internal/usecase/commands"
	"cusco-tours/internal/usecase/queries"
)

type RegisterResponse struct {
	UserID uuid.UUID `json:"userId"`
}

type LoginResponse struct {
	UserID      uuid.UUID `json:"userId"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	AccessToken string    `json:"accessToken"`
}

func FromLoginResult(result *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		UserID:      result.UserID,
		Name:        result.Name,
		Email:       result.Email,
		AccessToken: result.TokenPair.AccessToken,
	}
}

type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone,omitempty"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func FromUserView(view *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:        view.ID,
		Name:      view.Name,
		Email:     view.Email,
		Phone:     view.Phone,
		LastLogin: view.LastLogin,
		CreatedAt: view.CreatedAt,
	}
}
