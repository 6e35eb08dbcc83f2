package mappers

import (
	"time"

	"github.com/camposys/fieldops/modules/documents/domain/aggregates/document"
	"github.com/camposys/fieldops/modules/documents/domain/vault"
	"github.com/camposys/fieldops/modules/documents/presentation/viewmodels"
)

func DocumentToViewModel(d document.Document) *viewmodels.Document {
	return &viewmodels.Document{
		ID:            d.ID().String(),
		ClientID:      d.ClientID().String(),
		Title:         d.Title(),
		Category:      d.Category(),
		Subcategory:   d.Subcategory(),
		ReferenceDate: d.ReferenceDate(),
		FileKey:       d.FileKey(),
		FileSize:      d.FileSize(),
		CreatedAt:     d.CreatedAt().Format(time.RFC3339),
	}
}

func ViewNodeToTreeNode(node vault.ViewNode) viewmodels.TreeNode {
	if node.Type == vault.NodeFile {
		out := viewmodels.TreeNode{Type: string(vault.NodeFile)}
		if d, ok := node.Record.(document.Document); ok {
			out.File = DocumentToViewModel(d)
		}
		return out
	}
	return viewmodels.TreeNode{
		Type:  string(vault.NodeFolder),
		Name:  node.Value,
		Count: node.Count,
	}
}
