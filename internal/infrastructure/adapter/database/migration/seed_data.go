package migration

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
)

// SeedDevelopmentData creates the default game catalog and users. Both steps
// skip what already exists.
func SeedDevelopmentData(ctx context.Context, catalog usecase.GameCatalog, users usecase.UserUseCase) error {
	if err := catalog.SeedDefaultGames(ctx); err != nil {
		return err
	}
	return users.CreateDefaultUsers(ctx)
}
