package repository

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"pixbridge/internal/domain/entities"
	"pixbridge/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// SeedGateways creates the two sub-acquirer records when SEED_GATEWAYS is
// truthy and they do not exist yet. Local-development convenience; production
// gateway records are managed by operations.
func SeedGateways(ctx context.Context, repo interfaces.IGatewayRepository) error {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("SEED_GATEWAYS")))
	switch v {
	case "1", "true", "yes", "on":
	default:
		return nil
	}

	seeds := []entities.Gateway{
		{
			Name:    "SubAdquirente A",
			Type:    entities.GatewayTypeSubadqA,
			BaseURL: getenvDefault("SUBADQ_A_BASE_URL", "https://subadq-a.sandbox.local"),
			Active:  true,
		},
		{
			Name:    "SubAdquirente B",
			Type:    entities.GatewayTypeSubadqB,
			BaseURL: getenvDefault("SUBADQ_B_BASE_URL", "https://subadq-b.sandbox.local"),
			Active:  true,
		},
	}

	for _, seed := range seeds {
		existing, err := repo.GetByType(ctx, seed.Type)
		if err != nil {
			return err
		}
		if existing.ID != "" {
			continue
		}
		seed.ID = uuid.NewString()
		seed.CreatedAt = time.Now().UTC()
		if _, err := repo.Create(ctx, seed); err != nil {
			return err
		}
		log.Printf("[repository][seed] gateway created type=%s base_url=%s", seed.Type, seed.BaseURL)
	}
	return nil
}
