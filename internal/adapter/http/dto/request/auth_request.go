package request

import "obradash/internal/usecase"

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	CompanyName string `json:"nombre_empresa" binding:"required"`
	Phone       string `json:"telefono"`
}

func (r RegisterRequest) ToInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Email:       r.Email,
		Password:    r.Password,
		CompanyName: r.CompanyName,
		Phone:       r.Phone,
	}
}

type SyncRequest struct {
	FirebaseUID string `json:"firebase_uid" binding:"required"`
}
