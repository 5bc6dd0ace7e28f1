package http

import (
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

// apiDoc serves the OpenAPI document to swag-based UIs.
type apiDoc struct {
	json string
}

func (d apiDoc) ReadDoc() string { return d.json }

var registerDocOnce sync.Once

// registerDoc makes spec available under swag.Name. swag panics on a second
// registration, so only the first call has an effect.
func registerDoc(spec *openapi3.T) error {
	data, err := spec.MarshalJSON()
	if err != nil {
		return err
	}
	registerDocOnce.Do(func() {
		swag.Register(swag.Name, apiDoc{json: string(data)})
	})
	return nil
}
