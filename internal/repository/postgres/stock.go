package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jwalitptl/doacao-api/internal/model"
)

func (r *stockRepository) List(ctx context.Context) ([]*model.StockEntry, error) {
	query := `
		SELECT tipo_sanguineo, quantidade_ml, ultima_atualizacao
		FROM estoque_sangue
		ORDER BY tipo_sanguineo
	`
	start := time.Now()
	entries := []*model.StockEntry{}
	err := r.db.SelectContext(ctx, &entries, query)
	if err = r.observe("stock_list", start, err); err != nil {
		return nil, fmt.Errorf("failed to list stock: %w", err)
	}
	for _, e := range entries {
		e.Nivel = model.LevelFor(e.QuantidadeML)
	}
	return entries, nil
}

// SetQuantity replaces the volume of one blood type. ultima_atualizacao is
// maintained by a trigger.
func (r *stockRepository) SetQuantity(ctx context.Context, bloodType string, quantityML int) error {
	query := `UPDATE estoque_sangue SET quantidade_ml = $1 WHERE tipo_sanguineo = $2`

	start := time.Now()
	result, err := r.db.ExecContext(ctx, query, quantityML, bloodType)
	if err = r.observe("stock_update", start, err); err != nil {
		return fmt.Errorf("failed to update stock: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	return requireAffected(rows)
}
