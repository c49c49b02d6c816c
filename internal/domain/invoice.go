package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const DefaultCurrency = "COP"

type InvoiceStatus string

const (
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

var paidStatuses = []string{"paid", "closed", "pagada", "cerrada"}

var cancelledStatuses = []string{"void", "voided", "cancelled", "canceled", "anulada", "annulled"}

// ParseInvoiceStatus traduz o status do provedor para o enum fechado.
// Qualquer valor desconhecido é tratado como pendente.
func ParseInvoiceStatus(raw string) InvoiceStatus {
	status := strings.ToLower(strings.TrimSpace(raw))
	for _, s := range paidStatuses {
		if status == s {
			return InvoiceStatusPaid
		}
	}
	for _, s := range cancelledStatuses {
		if status == s {
			return InvoiceStatusCancelled
		}
	}
	return InvoiceStatusPending
}

type InvoiceClient struct {
	ExternalID     string `json:"externalId,omitempty"`
	Name           string `json:"name,omitempty"`
	Identification string `json:"identification,omitempty"`
	Email          string `json:"email,omitempty"`
}

type InvoiceItem struct {
	ExternalID  string  `json:"externalId,omitempty"`
	Name        string  `json:"name,omitempty"`
	Description string  `json:"description,omitempty"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`
}

// UnifiedInvoice é a fatura normalizada, independente do provedor.
// A identidade é (BusinessID, Source, ExternalID).
type UnifiedInvoice struct {
	ID         string         `json:"id"`
	BusinessID string         `json:"business"`
	Source     Source         `json:"source"`
	ExternalID string         `json:"externalId"`
	Number     string         `json:"number"`
	Date       time.Time      `json:"date"`
	DueDate    *time.Time     `json:"dueDate"`
	Client     InvoiceClient  `json:"client"`
	Items      []InvoiceItem  `json:"items"`
	Subtotal   float64        `json:"subtotal"`
	Taxes      float64        `json:"taxes"`
	Discounts  float64        `json:"discounts"`
	Total      float64        `json:"total"`
	Currency   string         `json:"currency"`
	Status     InvoiceStatus  `json:"status"`
	RawData    map[string]any `json:"rawData,omitempty"`
	IsDeleted  bool           `json:"isDeleted"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// ComputeTotal calcula subtotal - descontos + impostos arredondado em duas casas
func ComputeTotal(subtotal, discounts, taxes float64) float64 {
	total := decimal.NewFromFloat(subtotal).
		Sub(decimal.NewFromFloat(discounts)).
		Add(decimal.NewFromFloat(taxes)).
		Round(2)

	f, _ := total.Float64()
	return f
}

// ApplyTotalInvariant força total == round(subtotal - discounts + taxes), sobrescrevendo o total informado
// pelo provedor. Também aplica os defaults de moeda e status.
func (i *UnifiedInvoice) ApplyTotalInvariant() {
	i.Total = ComputeTotal(i.Subtotal, i.Discounts, i.Taxes)

	if i.Currency == "" {
		i.Currency = DefaultCurrency
	}
	if i.Status == "" {
		i.Status = InvoiceStatusPending
	}
}

// InvoiceFilter filtra a listagem de faturas de um negócio
type InvoiceFilter struct {
	Source *Source
	Status *InvoiceStatus
	Limit  uint64
	Offset uint64
}
