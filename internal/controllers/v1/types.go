package v1

import (
	"github.com/fundledger/backend/internal/httputil"
	ez_uuid "github.com/fundledger/backend/internal/uuid"
	"github.com/google/uuid"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required"` // The ID of the resource
}

// optionalUUID parses a query parameter. An empty parameter returns nil.
func optionalUUID(s string) (*uuid.UUID, error) {
	var id ez_uuid.UUID
	if err := id.UnmarshalParam(s); err != nil {
		return nil, httputil.ErrInvalidUUID
	}

	return id.Ptr(), nil
}
