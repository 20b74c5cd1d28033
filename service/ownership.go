package service

import (
	"context"
	"errors"
	"fmt"

	"Memora/dao"
	"Memora/models"
	"Memora/pkg/response"
)

var _ IOwnershipService = (*OwnershipService)(nil)

type IOwnershipService interface {
	IsOwner(ctx context.Context, kind models.EntityKind, id, userID uint64) (bool, error)
}

type OwnershipService struct {
	Registry *dao.OwnerRegistry
}

func (s *OwnershipService) IsOwner(ctx context.Context, kind models.EntityKind, id, userID uint64) (bool, error) {
	owned, err := s.Registry.Owner(ctx, kind, id)
	if errors.Is(err, dao.ErrUnknownEntityKind) {
		return false, response.Validation(fmt.Sprintf("unsupported entity %q", kind))
	}
	if err != nil {
		return false, response.Storage(err)
	}
	if owned == nil {
		return false, response.NotFound(fmt.Sprintf("%s not found", kind))
	}
	return owned.OwnerID() == userID, nil
}
