package app

import (
	"fmt"
	"net/http"
)

// BuildRootHandler composes a root mux using the configured module groups.
func BuildRootHandler(cfg Config) (http.Handler, error) {
	if cfg.ResolveViewer == nil {
		return nil, fmt.Errorf("viewer resolver is required")
	}
	return Compose(ComposeInput{
		ResolveViewer:       cfg.ResolveViewer,
		PublicModules:       cfg.PublicModules,
		ProtectedModules:    cfg.ProtectedModules,
		RequestSchemePolicy: cfg.RequestSchemePolicy,
	})
}
