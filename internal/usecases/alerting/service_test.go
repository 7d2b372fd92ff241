package alerting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/creative-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/creative-manager-api/internal/config"
	"github.com/vfg2006/creative-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testAlertConfig() config.AlertSync {
	return config.AlertSync{
		SpendThreshold:  30.0,
		MinImpressions:  1000,
		CTRDropWarn:     0.30,
		CTRDropCritical: 0.50,
	}
}

// metricRow monta uma linha diária para os cenários de detecção
func metricRow(ad string, date time.Time, impressions, clicks int, spend float64, conversions int) *domain.AdDailyMetric {
	return &domain.AdDailyMetric{
		AccountID:    "ACC001",
		AdExternalID: ad,
		Date:         date,
		Impressions:  impressions,
		Clicks:       clicks,
		Spend:        spend,
		Conversions:  conversions,
	}
}

func TestService_DetectForAccount_NoConversions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMetricRepo := mocks.NewMockDailyMetricRepository(ctrl)
	mockAlertRepo := mocks.NewMockAlertRepository(ctrl)

	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	since := day.AddDate(0, 0, -7)

	tests := []struct {
		name             string
		dayRow           *domain.AdDailyMetric
		expectAlert      bool
		expectedSeverity domain.AlertSeverity
	}{
		{
			name:             "Gasto acima do limiar sem conversão gera WARNING",
			dayRow:           metricRow("ad-1", day, 500, 10, 45.0, 0),
			expectAlert:      true,
			expectedSeverity: domain.AlertSeverityWarning,
		},
		{
			name:             "Gasto acima do dobro do limiar gera CRITICAL",
			dayRow:           metricRow("ad-1", day, 500, 10, 75.0, 0),
			expectAlert:      true,
			expectedSeverity: domain.AlertSeverityCritical,
		},
		{
			name:        "Gasto abaixo do limiar não gera alerta",
			dayRow:      metricRow("ad-1", day, 500, 10, 25.0, 0),
			expectAlert: false,
		},
		{
			name:        "Gasto alto com conversão não gera alerta",
			dayRow:      metricRow("ad-1", day, 500, 10, 80.0, 2),
			expectAlert: false,
		},
	}

	service := NewService(mockMetricRepo, mockAlertRepo, testAlertConfig())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockMetricRepo.EXPECT().
				ListRange("ACC001", since, day).
				Return([]*domain.AdDailyMetric{tt.dayRow}, nil)

			if tt.expectAlert {
				mockAlertRepo.EXPECT().
					ExistsForDay("ACC001", "ad-1", domain.AlertTypeNoConversions, day).
					Return(false, nil)
				mockAlertRepo.EXPECT().
					Create(gomock.Any()).
					Return(nil)
			}

			alerts, err := service.DetectForAccount("ACC001", day)

			assert.NoError(t, err)
			if tt.expectAlert {
				assert.Len(t, alerts, 1)
				assert.Equal(t, domain.AlertTypeNoConversions, alerts[0].Type)
				assert.Equal(t, tt.expectedSeverity, alerts[0].Severity)
			} else {
				assert.Empty(t, alerts)
			}
		})
	}
}

func TestService_DetectForAccount_CTRFatigue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMetricRepo := mocks.NewMockDailyMetricRepository(ctrl)
	mockAlertRepo := mocks.NewMockAlertRepository(ctrl)

	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	since := day.AddDate(0, 0, -7)

	// Linha de base: 3 dias com CTR de 2%
	history := []*domain.AdDailyMetric{
		metricRow("ad-1", day.AddDate(0, 0, -3), 5000, 100, 10.0, 1),
		metricRow("ad-1", day.AddDate(0, 0, -2), 5000, 100, 10.0, 1),
		metricRow("ad-1", day.AddDate(0, 0, -1), 5000, 100, 10.0, 1),
	}

	tests := []struct {
		name             string
		dayRow           *domain.AdDailyMetric
		history          []*domain.AdDailyMetric
		expectAlert      bool
		expectedSeverity domain.AlertSeverity
	}{
		{
			name:             "Queda de 40% gera WARNING",
			dayRow:           metricRow("ad-1", day, 5000, 60, 10.0, 1), // CTR 1.2%
			history:          history,
			expectAlert:      true,
			expectedSeverity: domain.AlertSeverityWarning,
		},
		{
			name:             "Queda de 75% gera CRITICAL",
			dayRow:           metricRow("ad-1", day, 5000, 25, 10.0, 1), // CTR 0.5%
			history:          history,
			expectAlert:      true,
			expectedSeverity: domain.AlertSeverityCritical,
		},
		{
			name:        "Queda de 20% não gera alerta",
			dayRow:      metricRow("ad-1", day, 5000, 80, 10.0, 1), // CTR 1.6%
			history:     history,
			expectAlert: false,
		},
		{
			name:        "Volume abaixo do mínimo de impressões não opina",
			dayRow:      metricRow("ad-1", day, 500, 2, 10.0, 1),
			history:     history,
			expectAlert: false,
		},
		{
			name:   "Histórico insuficiente não opina",
			dayRow: metricRow("ad-1", day, 5000, 25, 10.0, 1),
			history: []*domain.AdDailyMetric{
				metricRow("ad-1", day.AddDate(0, 0, -2), 5000, 100, 10.0, 1),
				metricRow("ad-1", day.AddDate(0, 0, -1), 5000, 100, 10.0, 1),
			},
			expectAlert: false,
		},
	}

	service := NewService(mockMetricRepo, mockAlertRepo, testAlertConfig())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := append([]*domain.AdDailyMetric{}, tt.history...)
			rows = append(rows, tt.dayRow)

			mockMetricRepo.EXPECT().
				ListRange("ACC001", since, day).
				Return(rows, nil)

			if tt.expectAlert {
				mockAlertRepo.EXPECT().
					ExistsForDay("ACC001", "ad-1", domain.AlertTypeCTRFatigue, day).
					Return(false, nil)
				mockAlertRepo.EXPECT().
					Create(gomock.Any()).
					Return(nil)
			}

			alerts, err := service.DetectForAccount("ACC001", day)

			assert.NoError(t, err)
			if tt.expectAlert {
				assert.Len(t, alerts, 1)
				assert.Equal(t, domain.AlertTypeCTRFatigue, alerts[0].Type)
				assert.Equal(t, tt.expectedSeverity, alerts[0].Severity)
			} else {
				assert.Empty(t, alerts)
			}
		})
	}
}

func TestService_DetectForAccount_DeduplicatesSameDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMetricRepo := mocks.NewMockDailyMetricRepository(ctrl)
	mockAlertRepo := mocks.NewMockAlertRepository(ctrl)

	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	since := day.AddDate(0, 0, -7)
	rows := []*domain.AdDailyMetric{metricRow("ad-1", day, 500, 10, 45.0, 0)}

	mockMetricRepo.EXPECT().
		ListRange("ACC001", since, day).
		Return(rows, nil).
		Times(2)

	// Primeira detecção cria o alerta
	mockAlertRepo.EXPECT().
		ExistsForDay("ACC001", "ad-1", domain.AlertTypeNoConversions, day).
		Return(false, nil)
	mockAlertRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil)

	// Reprocessar o mesmo dia encontra o alerta existente e não duplica
	mockAlertRepo.EXPECT().
		ExistsForDay("ACC001", "ad-1", domain.AlertTypeNoConversions, day).
		Return(true, nil)

	service := NewService(mockMetricRepo, mockAlertRepo, testAlertConfig())

	first, err := service.DetectForAccount("ACC001", day)
	assert.NoError(t, err)
	assert.Len(t, first, 1)

	second, err := service.DetectForAccount("ACC001", day)
	assert.NoError(t, err)
	assert.Empty(t, second)
}

func TestService_DetectForAccount_ResolvedAlertReopensDetection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMetricRepo := mocks.NewMockDailyMetricRepository(ctrl)
	mockAlertRepo := mocks.NewMockAlertRepository(ctrl)

	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	since := day.AddDate(0, 0, -7)
	rows := []*domain.AdDailyMetric{metricRow("ad-1", day, 500, 10, 45.0, 0)}

	mockMetricRepo.EXPECT().
		ListRange("ACC001", since, day).
		Return(rows, nil).
		Times(2)

	// A deduplicação considera apenas alertas em aberto: depois de resolver
	// o alerta do dia, reprocessar detecta e cria de novo
	mockAlertRepo.EXPECT().
		ExistsForDay("ACC001", "ad-1", domain.AlertTypeNoConversions, day).
		Return(false, nil).
		Times(2)
	mockAlertRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(2)

	service := NewService(mockMetricRepo, mockAlertRepo, testAlertConfig())

	first, err := service.DetectForAccount("ACC001", day)
	assert.NoError(t, err)
	assert.Len(t, first, 1)

	second, err := service.DetectForAccount("ACC001", day)
	assert.NoError(t, err)
	assert.Len(t, second, 1)
}

func TestService_DetectForAccount_DayTruncatedToUTC(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMetricRepo := mocks.NewMockDailyMetricRepository(ctrl)
	mockAlertRepo := mocks.NewMockAlertRepository(ctrl)

	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	since := day.AddDate(0, 0, -7)

	mockMetricRepo.EXPECT().
		ListRange("ACC001", since, day).
		Return(nil, nil)

	service := NewService(mockMetricRepo, mockAlertRepo, testAlertConfig())

	// Passar um horário no meio do dia deve consultar o dia truncado
	alerts, err := service.DetectForAccount("ACC001", time.Date(2024, 5, 10, 15, 30, 0, 0, time.UTC))

	assert.NoError(t, err)
	assert.Empty(t, alerts)
}
