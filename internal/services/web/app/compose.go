package app

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/louisbranch/javabite/internal/services/web/module"
	"github.com/louisbranch/javabite/internal/services/web/platform/httpx"
	"github.com/louisbranch/javabite/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/javabite/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/javabite/internal/services/web/routepath"
)

// roleAreas are the prefixes that only signed-in staff or customers reach.
var roleAreas = []string{
	routepath.CustomerPrefix,
	routepath.PaymentPrefix,
	routepath.ChefPrefix,
	routepath.WaiterPrefix,
	routepath.AdminPrefix,
}

// ComposeInput carries module groups and shared composition contracts.
type ComposeInput struct {
	ResolveViewer       module.ResolveViewer
	PublicModules       []module.Module
	ProtectedModules    []module.Module
	RequestSchemePolicy requestmeta.SchemePolicy
}

// Compose mounts every module on one mux. Protected modules are wrapped so
// anonymous visitors go to the login page, principals in the wrong role go
// back to the root, and cookie-authenticated mutations must prove same
// origin.
func Compose(input ComposeInput) (http.Handler, error) {
	viewer := input.ResolveViewer
	if viewer == nil {
		viewer = func(*http.Request) module.Viewer { return module.Viewer{} }
	}
	m := &mounter{mux: http.NewServeMux(), owners: map[string]string{}}

	for _, feature := range input.PublicModules {
		if feature == nil {
			return nil, fmt.Errorf("public module is nil")
		}
		mount, err := mountOf(feature)
		if err != nil {
			return nil, err
		}
		if isRoleArea(mount.Prefix) {
			return nil, fmt.Errorf("module %q has protected prefix %q in public group", feature.ID(), mount.Prefix)
		}
		if err := m.handle(feature.ID(), mount.Prefix, mount.Handler); err != nil {
			return nil, err
		}
	}

	for _, feature := range input.ProtectedModules {
		if feature == nil {
			return nil, fmt.Errorf("protected module is nil")
		}
		gated, ok := feature.(module.RoleGated)
		if !ok || len(gated.AllowedRoles()) == 0 {
			return nil, fmt.Errorf("protected module %q must declare allowed roles", feature.ID())
		}
		mount, err := mountOf(feature)
		if err != nil {
			return nil, err
		}
		if !isRoleArea(mount.Prefix) {
			return nil, fmt.Errorf("module %q must mount under one of %v, got %q", feature.ID(), roleAreas, mount.Prefix)
		}
		h := guard(mount.Handler, viewer, gated.AllowedRoles(), input.RequestSchemePolicy)
		// "/chef" and "/chef/" both land on the guarded module.
		for _, pattern := range []string{mount.Prefix, strings.TrimSuffix(mount.Prefix, "/")} {
			if err := m.handle(feature.ID(), pattern, h); err != nil {
				return nil, err
			}
		}
	}
	return m.mux, nil
}

type mounter struct {
	mux    *http.ServeMux
	owners map[string]string
}

func (m *mounter) handle(id, pattern string, h http.Handler) error {
	if owner, taken := m.owners[pattern]; taken {
		return fmt.Errorf("module %q duplicates prefix %q owned by module %q", id, pattern, owner)
	}
	m.owners[pattern] = id
	m.mux.Handle(pattern, h)
	return nil
}

// mountOf asks the module for its mount and checks the prefix shape.
func mountOf(feature module.Module) (module.Mount, error) {
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	switch p := mount.Prefix; {
	case p == "":
		err = fmt.Errorf("prefix is required")
	case strings.TrimSpace(p) != p:
		err = fmt.Errorf("prefix must not include surrounding whitespace")
	case !strings.HasPrefix(p, "/") || !strings.HasSuffix(p, "/"):
		err = fmt.Errorf("prefix must begin and end with /")
	}
	if err != nil {
		return module.Mount{}, fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), mount.Prefix, err)
	}
	if mount.Handler == nil {
		return module.Mount{}, fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, nil
}

func isRoleArea(prefix string) bool {
	return slices.Contains(roleAreas, prefix)
}

func guard(next http.Handler, viewer module.ResolveViewer, allowed []module.Role, policy requestmeta.SchemePolicy) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v := viewer(r)
		if !v.SignedIn() {
			httpx.WriteRedirect(w, r, routepath.Login)
			return
		}
		if !slices.Contains(allowed, v.Role) {
			// The root forwards each role to its own home.
			httpx.WriteRedirect(w, r, routepath.Root)
			return
		}
		if isMutation(r.Method) && hasSessionCookie(r) && !requestmeta.HasSameOriginProof(r, policy) {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func isMutation(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

func hasSessionCookie(r *http.Request) bool {
	_, ok := sessioncookie.Read(r)
	return ok
}
