package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"tatini-menu/insights-svc/internal/domain"
	"tatini-menu/insights-svc/internal/mocks"
	"tatini-menu/insights-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInsightsService_TopDishes(t *testing.T) {
	today := time.Now().UTC().Format("2006-01-02")

	tests := []struct {
		name      string
		date      string
		limit     int
		setupMock func(*mocks.StoreInterface)
		wantLen   int
		wantErr   error
	}{
		{
			name:  "explicit date and limit",
			date:  "2026-10-15",
			limit: 3,
			setupMock: func(m *mocks.StoreInterface) {
				m.On("TopDishes", mock.Anything, "2026-10-15", 3).Return([]domain.DishPopularity{
					{DishID: "tc", Name: "Tandoori Chicken", Quantity: 4},
				}, nil).Once()
			},
			wantLen: 1,
		},
		{
			name: "defaults to today and five",
			setupMock: func(m *mocks.StoreInterface) {
				m.On("TopDishes", mock.Anything, today, service.DefaultLimit).Return([]domain.DishPopularity{}, nil).Once()
			},
			wantLen: 0,
		},
		{
			name:  "oversized limit falls back",
			date:  "2026-10-15",
			limit: 1000,
			setupMock: func(m *mocks.StoreInterface) {
				m.On("TopDishes", mock.Anything, "2026-10-15", service.DefaultLimit).Return([]domain.DishPopularity{}, nil).Once()
			},
		},
		{
			name:      "bad date",
			date:      "15/10/2026",
			setupMock: func(m *mocks.StoreInterface) {},
			wantErr:   service.ErrInvalidDate,
		},
		{
			name: "store error",
			date: "2026-10-15",
			setupMock: func(m *mocks.StoreInterface) {
				m.On("TopDishes", mock.Anything, "2026-10-15", service.DefaultLimit).Return(nil, errors.New("redis down")).Once()
			},
			wantErr: errors.New("redis down"),
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockStore := mocks.NewStoreInterface(t)
			testCase.setupMock(mockStore)
			svc := service.NewInsightsService(mockStore)

			result, err := svc.TopDishes(context.Background(), testCase.date, testCase.limit)
			if testCase.wantErr != nil {
				assert.EqualError(t, err, testCase.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Len(t, result, testCase.wantLen)
		})
	}
}

func TestInsightsService_Channels(t *testing.T) {
	mockStore := mocks.NewStoreInterface(t)
	mockStore.On("Channels", mock.Anything, "2026-10-15").
		Return(map[string]int{domain.EventOrderWhatsApp: 3, domain.EventOrderWaiter: 5}, nil).Once()
	svc := service.NewInsightsService(mockStore)

	counts, err := svc.Channels(context.Background(), "2026-10-15")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-15", counts.Date)
	assert.Equal(t, 5, counts.Channels[domain.EventOrderWaiter])

	_, err = svc.Channels(context.Background(), "yesterday")
	assert.ErrorIs(t, err, service.ErrInvalidDate)
}
