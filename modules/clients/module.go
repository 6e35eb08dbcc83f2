package clients

import (
	"embed"

	"github.com/camposys/fieldops/modules/clients/infrastructure/persistence"
	"github.com/camposys/fieldops/modules/clients/presentation/controllers"
	"github.com/camposys/fieldops/modules/clients/services"
	"github.com/camposys/fieldops/pkg/application"
)

//go:embed infrastructure/persistence/schema/clients-schema.sql
var migrationFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	app.Migrations().RegisterSchema(&migrationFiles)

	app.RegisterServices(
		services.NewClientService(persistence.NewClientRepository()),
	)

	app.RegisterControllers(
		controllers.NewClientsAPIController(app),
	)

	return nil
}

func (m *Module) Name() string {
	return "clients"
}
