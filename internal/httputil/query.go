package httputil

import (
	"bytes"
	"encoding/json"
	"io"
	"reflect"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// BodyFields reports which fields of the struct type of v the request body
// sets, by their Go names. A field counts as set when its json key is present,
// even with a null value. That is how PATCH requests clear optional fields.
//
// The body is restored after reading, so binding it afterwards still works.
func BodyFields(c *gin.Context, v any) ([]string, error) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, ErrInvalidBody
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(raw))

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, ErrRequestBodyEmpty
	}

	var keys map[string]json.RawMessage
	err = json.Unmarshal(raw, &keys)
	if err != nil {
		log.Debug().Str("request-id", requestid.Get(c)).Err(err).Msg("patch body")
		return nil, ErrInvalidBody
	}

	set := []string{}
	for _, f := range reflect.VisibleFields(reflect.Indirect(reflect.ValueOf(v)).Type()) {
		if _, ok := keys[jsonName(f)]; ok {
			set = append(set, f.Name)
		}
	}

	return set, nil
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" {
		return f.Name
	}
	return name
}
