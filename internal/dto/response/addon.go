package response

import (
	"transfer-booking/internal/data/entity"
)

type AddOnResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	ShortDescription *string `json:"short_description,omitempty"`
	Price            float64 `json:"price"`
	DisplayOrder     int     `json:"display_order"`
}

func AddOnToResponse(addOn *entity.AddOn) AddOnResponse {
	return AddOnResponse{
		ID:               addOn.ID.String(),
		Name:             addOn.Name,
		ShortDescription: addOn.ShortDescription,
		Price:            addOn.Price,
		DisplayOrder:     addOn.DisplayOrder,
	}
}
