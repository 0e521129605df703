// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/jeniaquome/pioneer-mockup-sub002/logger"
	"github.com/jeniaquome/pioneer-mockup-sub002/middleware"
	"github.com/jeniaquome/pioneer-mockup-sub002/structdata"
)

// ValidateResponse is a validation result with its console rendering.
type ValidateResponse struct {
	structdata.Result
	Report string `json:"report"`
}

type StructuredDataHandler struct {
	log *logger.Logger
}

func NewStructuredDataHandler(log *logger.Logger) *StructuredDataHandler {
	return &StructuredDataHandler{log: log}
}

// Validate handles POST /structured-data/validate
// A JSON object is validated as one document, an array as a list of documents.
func (h *StructuredDataHandler) Validate(w http.ResponseWriter, r *http.Request) {
	strict := false
	if s := r.URL.Query().Get("strict"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "strict must be a boolean")
			return
		}
		strict = v
	}

	var doc any
	if err := middleware.ParseJSONBody(r, &doc); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var res structdata.Result
	switch docs := doc.(type) {
	case []any:
		if strict {
			res = structdata.ValidateSchemasStrict(docs)
		} else {
			res = structdata.ValidateSchemas(docs)
		}
	default:
		if strict {
			res = structdata.ValidateSchemaStrict(doc, "root")
		} else {
			res = structdata.ValidateSchema(doc, "root", "")
		}
	}

	h.log.Debug("structured data validated",
		"valid", res.Valid,
		"errors", len(res.Errors),
		"warnings", len(res.Warnings),
		"strict", strict,
	)

	middleware.JSONResponse(w, http.StatusOK, ValidateResponse{
		Result: res,
		Report: structdata.FormatValidationErrors(res),
	})
}
