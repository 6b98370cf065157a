package mapping

import (
	"time"

	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
	"github.com/Basri-akbas/Finance-Tracker/internal/models"
)

// ToModelSettings converts domain Settings to model Settings
func ToModelSettings(userID string, d domain.Settings, updatedAt time.Time) models.Settings {
	return models.Settings{
		UserID:      userID,
		InitialCash: d.InitialBalances.Cash,
		InitialBank: d.InitialBalances.Bank,
		CustomCategories: models.CustomCategories{
			Income:  toModelCategories(d.CustomCategories.Income),
			Expense: toModelCategories(d.CustomCategories.Expense),
		},
		LastUpdatedAt: updatedAt,
	}
}

// ToDomainSettings converts model Settings to domain Settings. Nil category lists become empty.
func ToDomainSettings(m models.Settings) domain.Settings {
	return domain.Settings{
		InitialBalances: domain.InitialBalances{Cash: m.InitialCash, Bank: m.InitialBank},
		CustomCategories: domain.CustomCategories{
			Income:  toDomainCategories(m.CustomCategories.Income),
			Expense: toDomainCategories(m.CustomCategories.Expense),
		},
		UpdatedAt: m.LastUpdatedAt,
	}
}

func toModelCategories(cs []domain.Category) []models.Category {
	out := make([]models.Category, len(cs))
	for i, c := range cs {
		out[i] = models.Category{ID: c.ID, Name: c.Name}
	}
	return out
}

func toDomainCategories(cs []models.Category) []domain.Category {
	out := make([]domain.Category, 0, len(cs))
	for _, c := range cs {
		if c.ID == "" {
			continue
		}
		out = append(out, domain.Category{ID: c.ID, Name: c.Name})
	}
	return out
}
