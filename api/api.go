// Package api holds the HTTP contract of the configurator.
package api

import _ "embed"

// Spec is the OpenAPI 3 document served at /swagger and used to validate requests.
//
//go:embed openapi.yaml
var Spec []byte
