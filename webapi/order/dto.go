package order

import "github.com/shopspring/decimal"

// CreateInput is the body of a new order.
type CreateInput struct {
	StlFileURL     *string          `json:"stlFileUrl" validate:"omitempty,fileref"`
	EstimatedPrice *decimal.Decimal `json:"estimatedPrice"`
}

// StatusInput moves an order to another stage.
type StatusInput struct {
	Status string `json:"status" validate:"required,oneof=PENDING PROCESSING CASTING FINISHING SHIPPED"`
}

// CloseInput is the body of the closing workflow.
type CloseInput struct {
	InvoiceNumber      string           `json:"invoiceNumber" validate:"required,max=64"`
	InvoiceFileURL     string           `json:"invoiceFileUrl" validate:"required,fileref"`
	FinalAmount        *decimal.Decimal `json:"finalAmount"`
	FinalWeight        *decimal.Decimal `json:"finalWeight"`
	DebitWeightAccount bool             `json:"debitWeightAccount"`
	MetalType          *string          `json:"metalType" validate:"omitempty,oneof=GOLD SILVER PLATINUM PALLADIUM"`
}
