package http

import (
	"fmt"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func bindUUIDPathParam(c echo.Context, name string) (kernel.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, badRequest(fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	parsed, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, badRequest(fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return parsed, nil
}

func bindQueryParam[T any](c echo.Context, name string, required bool, dest *T) error {
	if err := runtime.BindQueryParameter("form", true, required, name, c.QueryParams(), dest); err != nil {
		return badRequest(fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return nil
}

// bindOptionalQueryParam returns fallback when the parameter is absent.
func bindOptionalQueryParam[T any](c echo.Context, name string, fallback T) (T, error) {
	var value *T
	if err := bindQueryParam(c, name, false, &value); err != nil {
		return fallback, err
	}
	if value == nil {
		return fallback, nil
	}
	return *value, nil
}

func bindOptionalUUIDQueryParam(c echo.Context, name string) (*kernel.UUID, error) {
	var id *openapi_types.UUID
	if err := bindQueryParam(c, name, false, &id); err != nil {
		return nil, err
	}
	if id == nil {
		return nil, nil
	}
	parsed, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, badRequest(fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return &parsed, nil
}

func bindLocationQuery(c echo.Context, latName, lonName string) (kernel.Location, error) {
	var lat, lon float64
	if err := bindQueryParam(c, latName, true, &lat); err != nil {
		return kernel.Location{}, err
	}
	if err := bindQueryParam(c, lonName, true, &lon); err != nil {
		return kernel.Location{}, err
	}
	return kernel.NewLocation(lat, lon)
}

// bindBody decodes the JSON body; decoding failures are client errors.
func bindBody(c echo.Context, dest any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dest); err != nil {
		return badRequest("Invalid request body")
	}
	return nil
}
