package transport

import "github.com/google/uuid"

type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

// Quantity is a pointer so a missing field can be told apart from an
// explicit zero (zero is valid and removes the line).
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity"`
}

type CartTotalResponse struct {
	Total string `json:"total"`
	Items int    `json:"items"`
}

type ContactMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}
