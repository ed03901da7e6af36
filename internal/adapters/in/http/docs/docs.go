// Package docs publishes the OpenAPI document of the catering API to swag so
// that echo-swagger can serve it under /swagger/.
package docs

import (
	"fmt"
	"sync"

	"catering/internal/generated/servers"

	"github.com/swaggo/swag"
)

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	BasePath:         "/",
	Title:            "Catering orders",
	Description:      "Order lifecycle, pricing quotes and delivery window checks of the catering service.",
	InfoInstanceName: "swagger",
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

var (
	registerOnce sync.Once
	registerErr  error
)

// Register loads the OpenAPI document and registers it with swag. Calling it
// more than once is safe.
func Register() error {
	registerOnce.Do(func() {
		swagger, err := servers.GetSwagger()
		if err != nil {
			registerErr = err
			return
		}

		doc, err := swagger.MarshalJSON()
		if err != nil {
			registerErr = fmt.Errorf("failed to encode OpenAPI document: %w", err)
			return
		}

		SwaggerInfo.SwaggerTemplate = string(doc)
		swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
	})
	return registerErr
}
