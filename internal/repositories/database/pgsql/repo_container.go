package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/martapiva/presenze_tracker_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	workerRepo := newPgxWorkerRepository(dbPool)
	sessionRepo := newPgxSessionRepository(dbPool)
	entryRepo := newPgxEntryRepository(dbPool)
	settingsRepo := newPgxSettingsRepository(dbPool)

	return portsrepo.RepositoryProvider{
		WorkerRepo:   workerRepo,
		SessionRepo:  sessionRepo,
		EntryRepo:    entryRepo,
		SettingsRepo: settingsRepo,
	}
}
