package chef

import (
	"context"

	"github.com/louisbranch/javabite/internal/services/web/infra/restapi"
	apperrors "github.com/louisbranch/javabite/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func errKitchenUnavailable() error {
	return apperrors.E(apperrors.KindUnavailable, "kitchen service is not configured")
}

func (unavailableGateway) Orders(context.Context) ([]restapi.Order, error) {
	return nil, errKitchenUnavailable()
}

func (unavailableGateway) UpdateStatus(context.Context, string, string) error {
	return errKitchenUnavailable()
}

func (unavailableGateway) Profile(context.Context, string) (restapi.User, error) {
	return restapi.User{}, errKitchenUnavailable()
}

func (unavailableGateway) SaveProfile(context.Context, string, ProfileInput) (restapi.User, error) {
	return restapi.User{}, errKitchenUnavailable()
}
