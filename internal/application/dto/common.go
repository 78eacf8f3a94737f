package dto

import "github.com/shopspring/decimal"

func init() {
	// Montos y porcentajes viajan como números JSON, no como strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
