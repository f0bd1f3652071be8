package dto

import "github.com/shopspring/decimal"

func init() {
	// 價格以 JSON number 輸出
	decimal.MarshalJSONWithoutQuotes = true
}

// MessageResponse 單純訊息回應
type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
