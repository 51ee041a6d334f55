package model

import "time"

// StockLevel is the traffic-light classification shown on the stock grid.
type StockLevel string

const (
	StockLevelCritical StockLevel = "Crítico"
	StockLevelLow      StockLevel = "Baixo"
	StockLevelNormal   StockLevel = "Normal"
	StockLevelHigh     StockLevel = "Alto"
)

const (
	lowStockThresholdML    = 500
	normalStockThresholdML = 1000
)

// LevelFor classifies a volume in milliliters.
func LevelFor(ml int) StockLevel {
	switch {
	case ml <= 0:
		return StockLevelCritical
	case ml < lowStockThresholdML:
		return StockLevelLow
	case ml < normalStockThresholdML:
		return StockLevelNormal
	default:
		return StockLevelHigh
	}
}

type StockEntry struct {
	TipoSanguineo     BloodType  `db:"tipo_sanguineo" json:"tipo_sanguineo"`
	QuantidadeML      int        `db:"quantidade_ml" json:"quantidade_ml"`
	UltimaAtualizacao time.Time  `db:"ultima_atualizacao" json:"ultima_atualizacao"`
	Nivel             StockLevel `db:"-" json:"nivel"`
}

// SetStockRequest sets an absolute volume. Zero is a valid value, so
// presence is checked on the pointer.
type SetStockRequest struct {
	QuantidadeML *int `json:"quantidade_ml" binding:"required"`
}
