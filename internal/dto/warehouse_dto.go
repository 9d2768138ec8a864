package dto

type CreateWarehouseRequest struct {
	Name        string `json:"name"        validate:"required,min=1,max=120"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

type UpdateWarehouseRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=1,max=120"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
}

type WarehouseResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}
