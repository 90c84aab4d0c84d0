package services

import (
	portsrepo "github.com/martapiva/presenze_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/martapiva/presenze_tracker_app/internal/core/ports/services"
	"github.com/martapiva/presenze_tracker_app/internal/utils/timeutil"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, clock timeutil.Clock) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Worker = NewWorkerService(repos.WorkerRepo, clock)
	container.Attendance = NewAttendanceService(
		repos.WorkerRepo,
		repos.SessionRepo,
		repos.EntryRepo,
		repos.SettingsRepo,
		clock,
	)
	container.Reporting = NewReportingService(repos.EntryRepo, repos.WorkerRepo)

	return container
}
