package services

import (
	"testing"

	"github.com/lostfound-vn/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestInitialPostStatus(t *testing.T) {
	tests := []struct {
		name     string
		postType models.PostType
		isAdmin  bool
		expected models.PostStatus
	}{
		{"found posts skip moderation", models.PostTypeFound, false, models.PostStatusApproved},
		{"admin lost posts skip moderation", models.PostTypeLost, true, models.PostStatusApproved},
		{"user lost posts wait for the gate", models.PostTypeLost, false, models.PostStatusPending},
		{"admin found posts skip moderation", models.PostTypeFound, true, models.PostStatusApproved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, initialPostStatus(tt.postType, tt.isAdmin))
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"Lost iPhone 13 Pro", "lost-iphone-13-pro"},
		{"  spaced   out  ", "spaced-out"},
		{"Wallet!!! (brown, leather)", "wallet-brown-leather"},
		{"ALL CAPS TITLE", "all-caps-title"},
		{"---", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.expected, slugify(tt.title))
		})
	}
}

func TestRandomSuffix(t *testing.T) {
	a := randomSuffix()
	b := randomSuffix()

	assert.Len(t, a, 8)
	assert.NotEqual(t, a, b)
}
