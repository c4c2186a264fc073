package handler

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/recordhub/records-api/internal/core/domain"
)

// pathID reads the :id segment. Anything but plain decimal digits is treated
// as an id that cannot exist.
func pathID(c echo.Context, resource domain.Resource) (int64, error) {
	raw := c.Param("id")
	id, ok := parseID(raw)
	if !ok {
		return 0, &domain.RecordError{Resource: resource, Detail: fmt.Sprintf("invalid id %q", raw), Err: domain.ErrNotFound}
	}
	return id, nil
}

func parseID(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// bindRecord decodes and validates the request body into dst. The body is
// read as JSON whatever the Content-Type header says.
func bindRecord(c echo.Context, resource domain.Resource, dst any) error {
	if err := c.Echo().JSONSerializer.Deserialize(c, dst); err != nil {
		return domain.MalformedInput(resource, bindDetail(err))
	}
	if err := c.Validate(dst); err != nil {
		return domain.MalformedInput(resource, err.Error())
	}
	return nil
}

func bindDetail(err error) string {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return fmt.Sprintf("%v", he.Message)
	}
	return err.Error()
}
