package modules

import (
	"testing"

	"github.com/louisbranch/javabite/internal/services/web/module"
)

func TestDefaultModulesOrderAndIDs(t *testing.T) {
	t.Parallel()

	public := DefaultPublicModules(Dependencies{}, ModuleResolvers{})
	protected := DefaultProtectedModules(Dependencies{}, ModuleResolvers{})

	wantPublic := []string{"public", "adminauth"}
	if len(public) != len(wantPublic) {
		t.Fatalf("public module count = %d, want %d", len(public), len(wantPublic))
	}
	for i, id := range wantPublic {
		if got := public[i].ID(); got != id {
			t.Fatalf("public module[%d] id = %q, want %q", i, got, id)
		}
	}

	wantProtected := []string{"customer", "payment", "chef", "waiter", "admin"}
	if len(protected) != len(wantProtected) {
		t.Fatalf("protected module count = %d, want %d", len(protected), len(wantProtected))
	}
	for i, id := range wantProtected {
		if got := protected[i].ID(); got != id {
			t.Fatalf("protected module[%d] id = %q, want %q", i, got, id)
		}
	}
}

func TestProtectedModulesDeclareRoles(t *testing.T) {
	t.Parallel()

	want := map[string]module.Role{
		"customer": module.RoleCustomer,
		"payment":  module.RoleCustomer,
		"chef":     module.RoleChef,
		"waiter":   module.RoleWaiter,
		"admin":    module.RoleAdmin,
	}
	for _, m := range DefaultProtectedModules(Dependencies{}, ModuleResolvers{}) {
		gated, ok := m.(module.RoleGated)
		if !ok {
			t.Fatalf("module %q does not declare roles", m.ID())
		}
		roles := gated.AllowedRoles()
		if len(roles) != 1 || roles[0] != want[m.ID()] {
			t.Fatalf("module %q roles = %v, want [%s]", m.ID(), roles, want[m.ID()])
		}
	}
}

func TestModulesWithoutBackendReportUnhealthy(t *testing.T) {
	t.Parallel()

	all := append(DefaultPublicModules(Dependencies{}, ModuleResolvers{}), DefaultProtectedModules(Dependencies{}, ModuleResolvers{})...)
	for _, m := range all {
		reporter, ok := m.(module.HealthReporter)
		if !ok {
			continue
		}
		if reporter.Healthy() {
			t.Fatalf("module %q should be unhealthy without a backend", m.ID())
		}
	}
}

func TestModulesHaveUniquePrefixes(t *testing.T) {
	t.Parallel()

	all := append(DefaultPublicModules(Dependencies{}, ModuleResolvers{}), DefaultProtectedModules(Dependencies{}, ModuleResolvers{})...)
	seen := map[string]string{}
	for _, m := range all {
		mount, err := m.Mount()
		if err != nil {
			t.Fatalf("module %q mount error = %v", m.ID(), err)
		}
		if mount.Prefix == "" {
			t.Fatalf("module %q prefix is empty", m.ID())
		}
		if owner, ok := seen[mount.Prefix]; ok {
			t.Fatalf("module %q duplicates prefix %q owned by %q", m.ID(), mount.Prefix, owner)
		}
		seen[mount.Prefix] = m.ID()
	}
}
