package notifications

import (
	"embed"

	"github.com/camposys/fieldops/modules/notifications/infrastructure/persistence"
	"github.com/camposys/fieldops/modules/notifications/presentation/controllers"
	"github.com/camposys/fieldops/modules/notifications/services"
	"github.com/camposys/fieldops/pkg/application"
)

//go:embed infrastructure/persistence/schema/notifications-schema.sql
var migrationFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	app.Migrations().RegisterSchema(&migrationFiles)

	svc := services.NewNotificationService(persistence.NewNotificationRepository())
	app.RegisterServices(svc)

	// Transition effects arrive over the event bus; storing them must never
	// feed back into the transition that produced them.
	app.EventPublisher().Subscribe(svc.OnWorkOrderTransitioned)

	app.RegisterControllers(
		controllers.NewNotificationsAPIController(app),
	)

	return nil
}

func (m *Module) Name() string {
	return "notifications"
}
