package workorders

import (
	"embed"

	"github.com/camposys/fieldops/modules/workorders/infrastructure/persistence"
	"github.com/camposys/fieldops/modules/workorders/presentation/controllers"
	"github.com/camposys/fieldops/modules/workorders/services"
	"github.com/camposys/fieldops/pkg/application"
)

//go:embed infrastructure/persistence/schema/workorders-schema.sql
var migrationFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	app.Migrations().RegisterSchema(&migrationFiles)

	app.RegisterServices(
		services.NewWorkOrderService(persistence.NewWorkOrderRepository(), app.EventPublisher()),
	)

	app.RegisterControllers(
		controllers.NewWorkOrdersAPIController(app),
	)

	return nil
}

func (m *Module) Name() string {
	return "workorders"
}
