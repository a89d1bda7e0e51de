package bootstrap

import (
	"context"
	"log/slog"

	"room-booking/internal/pkg/config"
	"room-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var SeedModule = fx.Module("seed",
	fx.Invoke(registerSeeder),
)

// Runs before the server hook so the first request already sees seeded data.
func registerSeeder(lc fx.Lifecycle, cfg config.Config, seeder commands.Seeder, logger *slog.Logger) {
	if !cfg.Seed.Enabled {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("seeding database", "admin", cfg.Seed.AdminUsername)
			return seeder.Seed(ctx, commands.SeedInput{
				AdminUsername: cfg.Seed.AdminUsername,
				AdminPassword: cfg.Seed.AdminPassword,
			})
		},
	})
}
