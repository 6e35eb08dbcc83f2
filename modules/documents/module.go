package documents

import (
	"embed"

	"github.com/camposys/fieldops/modules/documents/infrastructure/persistence"
	"github.com/camposys/fieldops/modules/documents/presentation/controllers"
	"github.com/camposys/fieldops/modules/documents/services"
	"github.com/camposys/fieldops/pkg/application"
)

//go:embed infrastructure/persistence/schema/documents-schema.sql
var migrationFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	app.Migrations().RegisterSchema(&migrationFiles)

	app.RegisterServices(
		services.NewDocumentService(persistence.NewDocumentRepository()),
	)

	app.RegisterControllers(
		controllers.NewDocumentsAPIController(app),
	)

	return nil
}

func (m *Module) Name() string {
	return "documents"
}
