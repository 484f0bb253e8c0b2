package database

import (
	"log/slog"

	"github.com/lostfound-vn/backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm/clause"
)

// SeedPackages upserts the service package catalog. Package 1 is the
// permanently free tier; the rest are paid visibility packages.
func SeedPackages() error {
	packages := []models.ServicePackage{
		{
			ID:           models.FreePackageID,
			Name:         "Basic",
			Description:  "A free package for basic users with limited features",
			Price:        0,
			DurationDays: 7,
			Tier:         models.TierFree,
			Position:     0,
			Features: datatypes.JSON(`["Post up to 1 lost/found item","Basic search functionality","Standard visibility"]`),
		},
		{
			ID:           2,
			Name:         "Standard",
			Description:  "A standard package with enhanced features for regular users",
			Price:        49000,
			DurationDays: 30,
			Tier:         models.TierPriority,
			Position:     1,
			Features: datatypes.JSON(`["Post up to 5 lost/found items","Enhanced search functionality","Higher visibility in search results","Promotion for 3 days"]`),
		},
		{
			ID:           3,
			Name:         "Premium",
			Description:  "A premium package with advanced features for power users",
			Price:        99000,
			DurationDays: 60,
			Tier:         models.TierExpress,
			Position:     2,
			Features: datatypes.JSON(`["Unlimited lost/found items","Priority search placement","Featured listings","Promotion for 7 days","Direct messaging with finders/owners"]`),
		},
		{
			ID:           4,
			Name:         "Business",
			Description:  "A comprehensive package for businesses and organizations",
			Price:        199000,
			DurationDays: 90,
			Tier:         models.TierVIP,
			Position:     3,
			Features: datatypes.JSON(`["Unlimited lost/found items","Top search placement","Featured listings with badges","Promotion for 14 days","Priority customer support","Custom branding options","Analytics dashboard"]`),
		},
	}

	for i := range packages {
		if err := DB.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "description", "price", "duration", "package_type", "position", "features",
			}),
		}).Create(&packages[i]).Error; err != nil {
			return err
		}
	}

	slog.Info("service packages seeded", "count", len(packages))
	return nil
}
