package modules

import (
	"github.com/camposys/fieldops/modules/clients"
	"github.com/camposys/fieldops/modules/documents"
	"github.com/camposys/fieldops/modules/notifications"
	"github.com/camposys/fieldops/modules/workorders"
	"github.com/camposys/fieldops/pkg/application"
)

// BuiltInModules lists every module the server registers, in load order.
var BuiltInModules = []application.Module{
	clients.NewModule(),
	documents.NewModule(),
	workorders.NewModule(),
	notifications.NewModule(),
}

func Load(app application.Application, mods ...application.Module) error {
	for _, module := range mods {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	return nil
}
