package domain

import "time"

// StockStatus is the availability label derived from a medication quantity.
type StockStatus string

const (
	StockAvailable StockStatus = "disponivel"
	StockLow       StockStatus = "baixa"
	StockDepleted  StockStatus = "esgotado"
)

// LowStockThreshold is the first quantity considered fully available.
const LowStockThreshold = 10

// DeriveStockStatus maps a non-negative quantity to its status. Every
// quantity write goes through it so status never drifts from quantity.
func DeriveStockStatus(quantity int) StockStatus {
	switch {
	case quantity <= 0:
		return StockDepleted
	case quantity < LowStockThreshold:
		return StockLow
	default:
		return StockAvailable
	}
}

// ValidStockStatus reports whether s is a known status label.
func ValidStockStatus(s string) bool {
	switch StockStatus(s) {
	case StockAvailable, StockLow, StockDepleted:
		return true
	}
	return false
}

// Medication is an inventory item held by a facility.
type Medication struct {
	ID          string      `json:"_id"`
	Name        string      `json:"nome"`
	Type        string      `json:"tipo,omitempty"`
	Description string      `json:"descricao,omitempty"`
	FacilityID  string      `json:"-"`
	Facility    *Facility   `json:"postoSaude,omitempty"`
	Quantity    int         `json:"quantidade"`
	Status      StockStatus `json:"status"`
	UpdatedAt   time.Time   `json:"ultimaAtualizacao"`
}

// SetQuantity stores q and re-derives the status and update timestamp.
func (m *Medication) SetQuantity(q int, now time.Time) {
	m.Quantity = q
	m.Status = DeriveStockStatus(q)
	m.UpdatedAt = now
}
