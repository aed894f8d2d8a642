package httputil

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// BindData binds the JSON request body to data.
//
// Type mismatches are returned as they are, so that the caller learns which
// field is wrong. All other decoding problems return ErrInvalidBody.
func BindData(c *gin.Context, data any) error {
	err := c.ShouldBindJSON(data)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return ErrRequestBodyEmpty
	case errors.As(err, &typeErr):
		return err
	}

	log.Debug().Str("request-id", requestid.Get(c)).Err(err).Msg("request body could not be decoded")
	return ErrInvalidBody
}

// UUIDFromString parses a resource ID from a query parameter. An empty
// parameter is the Nil UUID.
func UUIDFromString(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, nil
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, ErrInvalidUUID
	}

	return id, nil
}
