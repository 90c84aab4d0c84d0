package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/martapiva/presenze_tracker_app/internal/apperrors"
	"github.com/martapiva/presenze_tracker_app/internal/core/domain"
	portsrepo "github.com/martapiva/presenze_tracker_app/internal/core/ports/repositories"
)

type PgxSettingsRepository struct {
	db *pgxpool.Pool
}

func newPgxSettingsRepository(db *pgxpool.Pool) portsrepo.SettingsRepository {
	return &PgxSettingsRepository{db: db}
}

// Ensure PgxSettingsRepository implements portsrepo.SettingsRepository
var _ portsrepo.SettingsRepository = (*PgxSettingsRepository)(nil)

func (r *PgxSettingsRepository) GetAutoCloseSettings(ctx context.Context) (*domain.AutoCloseSettings, error) {
	query := `SELECT close_time, enabled FROM auto_close_settings WHERE singleton;`
	var settings domain.AutoCloseSettings
	err := r.db.QueryRow(ctx, query).Scan(&settings.Time, &settings.Enabled)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read auto-close settings: %w", err)
	}
	return &settings, nil
}

func (r *PgxSettingsRepository) SaveAutoCloseSettings(ctx context.Context, settings domain.AutoCloseSettings) error {
	query := `
        INSERT INTO auto_close_settings (singleton, close_time, enabled)
        VALUES (TRUE, $1, $2)
        ON CONFLICT (singleton) DO UPDATE SET
            close_time = EXCLUDED.close_time,
            enabled = EXCLUDED.enabled;
    `
	_, err := r.db.Exec(ctx, query, settings.Time, settings.Enabled)
	if err != nil {
		return fmt.Errorf("failed to save auto-close settings: %w", err)
	}
	return nil
}
