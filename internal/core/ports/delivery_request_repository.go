package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/request"
)

type DeliveryRequestRepository interface {
	Add(ctx context.Context, aggregate *request.DeliveryRequest) error
	Update(ctx context.Context, aggregate *request.DeliveryRequest) error

	// Claim has the same conditional-write contract as OrderRepository.Claim, against
	// pending unassigned requests.
	Claim(ctx context.Context, aggregate *request.DeliveryRequest) error

	Get(ctx context.Context, id kernel.UUID) (*request.DeliveryRequest, error)
	GetForUpdate(ctx context.Context, id kernel.UUID) (*request.DeliveryRequest, error)
}
