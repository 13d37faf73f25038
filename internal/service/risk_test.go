package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"salesincentive-backend/internal/domain"
)

func TestAssessRisk(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		rate   float64
		want   domain.RiskLevel
	}{
		{"Large Amount Is High", 500001, 5, domain.RiskHigh},
		{"High Rate Is High", 100000, 20.5, domain.RiskHigh},
		{"Large Amount Beats Low Rate", 600000, 1, domain.RiskHigh},
		{"Medium Amount", 200001, 10, domain.RiskMedium},
		{"Boundary 500000 Is Medium", 500000, 10, domain.RiskMedium},
		{"Boundary 200000 Is Low", 200000, 10, domain.RiskLow},
		{"Boundary Rate 20 Is Low", 100000, 20, domain.RiskLow},
		{"Small Deal", 40000, 5, domain.RiskLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AssessRisk(tt.amount, tt.rate))
		})
	}
}
