package waiter

import (
	"context"

	"github.com/louisbranch/javabite/internal/services/web/infra/restapi"
	apperrors "github.com/louisbranch/javabite/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func errFloorUnavailable() error {
	return apperrors.E(apperrors.KindUnavailable, "floor service is not configured")
}

func (unavailableGateway) Orders(context.Context) ([]restapi.Order, error) {
	return nil, errFloorUnavailable()
}

func (unavailableGateway) Tables(context.Context) ([]restapi.Table, error) {
	return nil, errFloorUnavailable()
}

func (unavailableGateway) UpdateStatus(context.Context, string, string) error {
	return errFloorUnavailable()
}
