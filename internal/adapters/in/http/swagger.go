package http

import (
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// specDoc serves the contract to swag as JSON.
type specDoc struct {
	json string
}

func (d specDoc) ReadDoc() string { return d.json }

var registerOnce sync.Once

// RegisterSwagger publishes doc under /swagger/. swag keeps a process-wide
// registry, so only the first call registers.
func RegisterSwagger(e *echo.Echo, doc *openapi3.T) error {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return err
	}
	registerOnce.Do(func() {
		swag.Register(swag.Name, specDoc{json: string(raw)})
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return nil
}
