package admin

import (
	"context"

	"github.com/louisbranch/javabite/internal/services/web/infra/restapi"
	apperrors "github.com/louisbranch/javabite/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func errAdminUnavailable() error {
	return apperrors.E(apperrors.KindUnavailable, "admin service is not configured")
}

func (unavailableGateway) DashboardStats(context.Context) (restapi.DashboardStats, error) {
	return restapi.DashboardStats{}, errAdminUnavailable()
}

func (unavailableGateway) FeedbackStats(context.Context) (restapi.FeedbackStats, error) {
	return restapi.FeedbackStats{}, errAdminUnavailable()
}

func (unavailableGateway) Staff(context.Context) ([]restapi.User, error) {
	return nil, errAdminUnavailable()
}

func (unavailableGateway) CreateStaff(context.Context, StaffInput) error {
	return errAdminUnavailable()
}

func (unavailableGateway) DeleteStaff(context.Context, string) error {
	return errAdminUnavailable()
}

func (unavailableGateway) Menu(context.Context) ([]restapi.MenuItem, error) {
	return nil, errAdminUnavailable()
}

func (unavailableGateway) SaveMenuItem(context.Context, string, MenuItemInput) error {
	return errAdminUnavailable()
}

func (unavailableGateway) DeleteMenuItem(context.Context, string) error {
	return errAdminUnavailable()
}

func (unavailableGateway) Orders(context.Context) ([]restapi.Order, error) {
	return nil, errAdminUnavailable()
}

func (unavailableGateway) Customers(context.Context) ([]restapi.User, error) {
	return nil, errAdminUnavailable()
}

func (unavailableGateway) Tables(context.Context) ([]restapi.Table, error) {
	return nil, errAdminUnavailable()
}

func (unavailableGateway) SaveTable(context.Context, restapi.Table) error {
	return errAdminUnavailable()
}

func (unavailableGateway) DeleteTable(context.Context, string) error {
	return errAdminUnavailable()
}

func (unavailableGateway) Feedback(context.Context, FeedbackFilter) ([]restapi.Feedback, error) {
	return nil, errAdminUnavailable()
}
