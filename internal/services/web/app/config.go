package app

import (
	"github.com/louisbranch/javabite/internal/services/web/module"
	"github.com/louisbranch/javabite/internal/services/web/platform/requestmeta"
)

// Config captures the composition inputs for the web root handler.
type Config struct {
	ResolveViewer       module.ResolveViewer
	PublicModules       []module.Module
	ProtectedModules    []module.Module
	RequestSchemePolicy requestmeta.SchemePolicy
}
