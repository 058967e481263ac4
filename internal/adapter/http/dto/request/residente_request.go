package request

import "obradash/internal/usecase"

type ResidenteRequest struct {
	Name     string `json:"nombre" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"telefono"`
	Password string `json:"password"`
	ObraID   string `json:"obra_id"`
}

func (r ResidenteRequest) ToInput() usecase.ResidenteInput {
	return usecase.ResidenteInput{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Password: r.Password,
		ObraID:   r.ObraID,
	}
}

type ReassignRequest struct {
	ObraID string `json:"obra_id" binding:"required"`
}
