package testing

import (
	"context"
	"time"

	"github.com/aristath/tickerpulse/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockDocumentGateway is a testify mock of domain.DocumentGateway
type MockDocumentGateway struct {
	mock.Mock
}

var _ domain.DocumentGateway = (*MockDocumentGateway)(nil)

// GetTicker returns the configured record or error
func (m *MockDocumentGateway) GetTicker(ctx context.Context, ticker string) (domain.TickerRecord, error) {
	args := m.Called(ctx, ticker)
	return args.Get(0).(domain.TickerRecord), args.Error(1)
}

// QueryRecent returns the configured snapshot or error
func (m *MockDocumentGateway) QueryRecent(ctx context.Context, maxAge time.Duration) ([]domain.TickerRecord, error) {
	args := m.Called(ctx, maxAge)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TickerRecord), args.Error(1)
}

// QueryTrending returns the configured snapshot or error
func (m *MockDocumentGateway) QueryTrending(ctx context.Context, metric domain.Metric, window time.Duration) ([]domain.TickerRecord, error) {
	args := m.Called(ctx, metric, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TickerRecord), args.Error(1)
}

// GetHistory returns the configured series or error
func (m *MockDocumentGateway) GetHistory(ctx context.Context, ticker string, metric domain.Metric) (interface{}, error) {
	args := m.Called(ctx, ticker, metric)
	return args.Get(0), args.Error(1)
}
