package pizzeria

import (
	"context"
	"time"

	"pizzeria-backend/internal/logger"
	"pizzeria-backend/internal/models"
)

// SeedDemoData populates an empty database with one demo person and two
// orders. It is a no-op when any person already exists.
func SeedDemoData(ctx context.Context, repo Repository, log *logger.Logger) error {
	count, err := repo.CountPersons(ctx)
	if err != nil {
		return err
	}
	if count != 0 {
		log.Info("seed_skipped", "Using already existing dataset", "startup", nil)
		return nil
	}

	log.Info("seed_started", "Generating demo dataset", "startup", nil)

	personID, err := repo.InsertPerson(ctx, "Muster")
	if err != nil {
		return err
	}

	orders := []models.Order{
		{Crust: models.CrustThin, Flavour: models.FlavourHawaii, Size: models.SizeMedium, TableNo: 1, CustomerID: personID},
		{Crust: models.CrustThin, Flavour: models.FlavourRegina, Size: models.SizeLarge, TableNo: 5, CustomerID: personID},
	}
	for i := range orders {
		orders[i].Timestamp = time.Now().UnixMilli()
		if _, err := repo.InsertOrder(ctx, &orders[i]); err != nil {
			return err
		}
	}

	log.Info("seed_completed", "Demo data generation successful", "startup", map[string]interface{}{
		"person_id": personID,
		"orders":    len(orders),
	})
	return nil
}
