package http

import (
	"net/http"

	"storefront-state/internal/domain"
)

var (
	// Success response
	Success = Status{Code: http.StatusOK, Message: []string{"Success"}}
	// BadRequest response
	BadRequest = Status{Code: http.StatusBadRequest, Message: []string{"Sorry, Not responding because of incorrect syntax"}}
	// NotFound response
	NotFound = Status{Code: http.StatusNotFound, Message: []string{"Sorry, Data not found"}}
	// Unauthorized response
	Unauthorized = Status{Code: http.StatusUnauthorized, Message: []string{"Sorry, We are not able to process your request. Please try again"}}
	// InternalServerError response
	InternalServerError = Status{Code: http.StatusInternalServerError, Message: []string{"Internal Server Error"}}
)

// ResponseBody struct - Generic HTTP response wrapper
type ResponseBody struct {
	Status Status      `json:"status,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

// Status struct
type Status struct {
	Code    int      `json:"code,omitempty"`
	Message []string `json:"message,omitempty"`
}

type (
	// CartResponse struct - HTTP response DTO for the cart
	CartResponse struct {
		Items      []domain.CartLine `json:"items"`
		CartCount  int               `json:"cartCount"`
		TotalPrice string            `json:"totalPrice"`
	}

	// CountResponse struct - HTTP response DTO for one product's quantity
	CountResponse struct {
		ID       string `json:"id"`
		Quantity int    `json:"quantity"`
	}

	// PointLogResponse struct - HTTP response DTO for a ledger entry
	PointLogResponse struct {
		ID     int64  `json:"id"`
		Type   string `json:"type"`
		Title  string `json:"title"`
		Amount int    `json:"amount"`
		Time   string `json:"time"`
	}
)

func badRequest(messages []string) ResponseBody {
	status := BadRequest
	status.Message = messages
	return ResponseBody{Status: status}
}

func toPointLogResponses(entries []domain.PointLogEntry, zone string) []PointLogResponse {
	data := make([]PointLogResponse, 0, len(entries))
	for _, entry := range entries {
		data = append(data, toPointLogResponse(entry, zone))
	}
	return data
}

func toPointLogResponse(entry domain.PointLogEntry, zone string) PointLogResponse {
	return PointLogResponse{
		ID:     entry.ID,
		Type:   string(entry.Type),
		Title:  entry.Title,
		Amount: entry.Amount,
		Time:   domain.DisplayTime(entry.Time, zone),
	}
}
