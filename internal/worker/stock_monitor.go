package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/doacao-api/internal/model"
	"github.com/jwalitptl/doacao-api/internal/repository"
	"github.com/jwalitptl/doacao-api/pkg/event"
)

const (
	StockResource     = "estoque"
	ActionLevelChange = "level_changed"
)

// StockLevelChange is the payload of an estoque.level_changed event.
type StockLevelChange struct {
	TipoSanguineo model.BloodType  `json:"tipo_sanguineo"`
	QuantidadeML  int              `json:"quantidade_ml"`
	Nivel         model.StockLevel `json:"nivel"`
	Anterior      model.StockLevel `json:"nivel_anterior,omitempty"`
}

// StockMonitor polls the stock table and emits an event whenever a blood
// type moves to another level. On the first pass only low and critical
// types are reported.
type StockMonitor struct {
	stock    repository.StockRepository
	events   event.EventService
	interval time.Duration
	last     map[model.BloodType]model.StockLevel
}

func NewStockMonitor(stock repository.StockRepository, events event.EventService, interval time.Duration) *StockMonitor {
	return &StockMonitor{
		stock:    stock,
		events:   events,
		interval: interval,
		last:     make(map[model.BloodType]model.StockLevel),
	}
}

func (w *StockMonitor) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.Info().Dur("interval", w.interval).Msg("starting stock monitor")
	if err := w.check(ctx); err != nil {
		log.Error().Err(err).Msg("stock check failed")
	}

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("stopping stock monitor")
			return
		case <-ticker.C:
			if err := w.check(ctx); err != nil {
				log.Error().Err(err).Msg("stock check failed")
			}
		}
	}
}

func (w *StockMonitor) check(ctx context.Context) error {
	entries, err := w.stock.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list stock: %w", err)
	}

	for _, e := range entries {
		level := model.LevelFor(e.QuantidadeML)
		prev, seen := w.last[e.TipoSanguineo]
		w.last[e.TipoSanguineo] = level

		if seen && prev == level {
			continue
		}
		if !seen && level != model.StockLevelCritical && level != model.StockLevelLow {
			continue
		}

		change := &StockLevelChange{
			TipoSanguineo: e.TipoSanguineo,
			QuantidadeML:  e.QuantidadeML,
			Nivel:         level,
			Anterior:      prev,
		}
		err := w.events.Emit(ctx, &event.Event{
			Resource:   StockResource,
			Action:     ActionLevelChange,
			ResourceID: string(e.TipoSanguineo),
			Payload:    change,
		})
		if err != nil {
			// Forget the level so the next pass retries.
			if seen {
				w.last[e.TipoSanguineo] = prev
			} else {
				delete(w.last, e.TipoSanguineo)
			}
			log.Warn().Err(err).Str("blood_type", string(e.TipoSanguineo)).Msg("failed to emit stock level change")
		}
	}
	return nil
}
