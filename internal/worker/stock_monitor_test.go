package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/doacao-api/internal/model"
	"github.com/jwalitptl/doacao-api/internal/repository/mocks"
	"github.com/jwalitptl/doacao-api/pkg/event"
)

type recordingEvents struct {
	events []*event.Event
	err    error
}

func (r *recordingEvents) Emit(_ context.Context, e *event.Event) error {
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, e)
	return nil
}

func stock(entries map[model.BloodType]int) []*model.StockEntry {
	var out []*model.StockEntry
	for _, bt := range model.BloodTypes {
		if ml, ok := entries[bt]; ok {
			out = append(out, &model.StockEntry{TipoSanguineo: bt, QuantidadeML: ml})
		}
	}
	return out
}

func TestStockMonitorFirstPassReportsLowOnly(t *testing.T) {
	repo := new(mocks.StockRepository)
	repo.On("List", mock.Anything).Return(stock(map[model.BloodType]int{
		model.BloodTypeAPos: 1200,
		model.BloodTypeONeg: 0,
		model.BloodTypeBNeg: 300,
	}), nil).Once()
	events := &recordingEvents{}

	w := NewStockMonitor(repo, events, 0)
	require.NoError(t, w.check(context.Background()))

	require.Len(t, events.events, 2)
	assert.Equal(t, string(model.BloodTypeBNeg), events.events[0].ResourceID)
	assert.Equal(t, string(model.BloodTypeONeg), events.events[1].ResourceID)
	change := events.events[1].Payload.(*StockLevelChange)
	assert.Equal(t, model.StockLevelCritical, change.Nivel)
	assert.Empty(t, change.Anterior)
	repo.AssertExpectations(t)
}

func TestStockMonitorReportsTransitions(t *testing.T) {
	repo := new(mocks.StockRepository)
	repo.On("List", mock.Anything).Return(stock(map[model.BloodType]int{
		model.BloodTypeAPos: 1200,
		model.BloodTypeONeg: 0,
	}), nil).Once()
	repo.On("List", mock.Anything).Return(stock(map[model.BloodType]int{
		model.BloodTypeAPos: 1100,
		model.BloodTypeONeg: 700,
	}), nil).Once()
	events := &recordingEvents{}

	w := NewStockMonitor(repo, events, 0)
	require.NoError(t, w.check(context.Background()))
	require.NoError(t, w.check(context.Background()))

	require.Len(t, events.events, 2)
	last := events.events[1]
	assert.Equal(t, StockResource, last.Resource)
	assert.Equal(t, ActionLevelChange, last.Action)
	change := last.Payload.(*StockLevelChange)
	assert.Equal(t, model.StockLevelNormal, change.Nivel)
	assert.Equal(t, model.StockLevelCritical, change.Anterior)
}

func TestStockMonitorRetriesFailedEmit(t *testing.T) {
	entries := stock(map[model.BloodType]int{model.BloodTypeABNeg: 100})
	repo := new(mocks.StockRepository)
	repo.On("List", mock.Anything).Return(entries, nil).Twice()
	events := &recordingEvents{err: errors.New("broker down")}

	w := NewStockMonitor(repo, events, 0)
	require.NoError(t, w.check(context.Background()))
	assert.Empty(t, events.events)

	events.err = nil
	require.NoError(t, w.check(context.Background()))
	require.Len(t, events.events, 1)
	assert.Equal(t, model.StockLevelLow, events.events[0].Payload.(*StockLevelChange).Nivel)
}

func TestStockMonitorListError(t *testing.T) {
	repo := new(mocks.StockRepository)
	repo.On("List", mock.Anything).Return(nil, errors.New("connection refused")).Once()

	w := NewStockMonitor(repo, &recordingEvents{}, 0)
	err := w.check(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestStockMonitorStopsOnCancel(t *testing.T) {
	repo := new(mocks.StockRepository)
	repo.On("List", mock.Anything).Return([]*model.StockEntry{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	done := make(chan struct{})
	go func() {
		NewStockMonitor(repo, &recordingEvents{}, 1<<40).Start(ctx)
		close(done)
	}()
	<-done
}
