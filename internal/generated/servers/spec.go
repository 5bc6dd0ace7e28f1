package servers

import (
	"fmt"

	"configurator/api"

	"github.com/getkin/kin-openapi/openapi3"
)

// GetSwagger returns the parsed and validated OpenAPI document. Each call
// returns a fresh copy that callers may modify.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(api.Spec)
	if err != nil {
		return nil, fmt.Errorf("error loading Swagger: %w", err)
	}
	if err = swagger.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("error validating Swagger: %w", err)
	}
	return swagger, nil
}
