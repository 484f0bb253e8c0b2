package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoostPrice(t *testing.T) {
	const baseRate = 10000

	tests := []struct {
		name         string
		durationDays int
		expected     int64
	}{
		{
			name:         "single day at base rate",
			durationDays: 1,
			expected:     10000,
		},
		{
			name:         "short boost has no discount",
			durationDays: 5,
			expected:     50000,
		},
		{
			name:         "six days still full price",
			durationDays: 6,
			expected:     60000,
		},
		{
			name:         "weekly discount kicks in at 7 days",
			durationDays: 7,
			expected:     63000, // 10000*7*0.9
		},
		{
			name:         "ten days with weekly discount",
			durationDays: 10,
			expected:     90000, // 10000*10*0.9
		},
		{
			name:         "29 days still only weekly discount",
			durationDays: 29,
			expected:     261000, // 10000*29*0.9
		},
		{
			name:         "monthly discount compounds at 30 days",
			durationDays: 30,
			expected:     216000, // 10000*30*0.9*0.8
		},
		{
			name:         "35 days compounds both discounts",
			durationDays: 35,
			expected:     252000, // 10000*35*0.9*0.8
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BoostPrice(baseRate, tt.durationDays))
		})
	}
}

func TestBoostPriceScalesWithBaseRate(t *testing.T) {
	assert.Equal(t, BoostPrice(10000, 5)*2, BoostPrice(20000, 5))
	assert.Equal(t, BoostPrice(10000, 35)*2, BoostPrice(20000, 35))
}
