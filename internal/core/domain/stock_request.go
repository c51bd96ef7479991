package domain

import "time"

// StockRequest records a patient asking a facility for a medication.
type StockRequest struct {
	ID           string    `json:"_id"`
	Protocol     string    `json:"protocolo"`
	UserID       string    `json:"usuario"`
	MedicationID string    `json:"medicamentoId"`
	FacilityID   string    `json:"postoId"`
	CreatedAt    time.Time `json:"criadoEm"`
}
