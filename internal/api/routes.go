package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

// OpenAPI3 converts the registered Swagger 2.0 document and validates the
// result.
func OpenAPI3(ctx context.Context) (*openapi3.T, error) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		return nil, fmt.Errorf("read swagger doc: %w", err)
	}

	var doc2 openapi2.T
	if err := json.Unmarshal([]byte(doc), &doc2); err != nil {
		return nil, fmt.Errorf("parse swagger doc: %w", err)
	}

	doc3, err := openapi2conv.ToV3(&doc2)
	if err != nil {
		return nil, fmt.Errorf("convert swagger doc: %w", err)
	}

	if err := openapi3.NewLoader().ResolveRefsIn(doc3, nil); err != nil {
		return nil, fmt.Errorf("resolve openapi refs: %w", err)
	}

	if err := doc3.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi doc: %w", err)
	}

	return doc3, nil
}

// RegisterDocsRoutes serves the Swagger 2.0 document and its OpenAPI 3
// conversion.
func RegisterDocsRoutes(mux *http.ServeMux) error {
	swaggerDoc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		return err
	}

	doc3, err := OpenAPI3(context.Background())
	if err != nil {
		return err
	}
	openapiDoc, err := json.Marshal(doc3)
	if err != nil {
		return err
	}

	mux.HandleFunc("GET /docs/swagger.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(swaggerDoc))
	})
	mux.HandleFunc("GET /docs/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(openapiDoc)
	})

	return nil
}
