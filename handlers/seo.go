// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strings"

	"github.com/jeniaquome/pioneer-mockup-sub002/cliparse"
	"github.com/jeniaquome/pioneer-mockup-sub002/middleware"
	"github.com/jeniaquome/pioneer-mockup-sub002/models"
	"github.com/jeniaquome/pioneer-mockup-sub002/seo"
	"github.com/jeniaquome/pioneer-mockup-sub002/survey"
)

type SEOHandler struct {
	cfg     cliparse.Config
	catalog *survey.Catalog
}

func NewSEOHandler(cfg cliparse.Config, catalog *survey.Catalog) *SEOHandler {
	return &SEOHandler{cfg: cfg, catalog: catalog}
}

// Hreflang handles GET /seo/hreflang
func (h *SEOHandler) Hreflang(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		path = "/"
	}
	if !strings.HasPrefix(path, "/") {
		middleware.ErrorResponse(w, http.StatusBadRequest, "path must start with /")
		return
	}

	resp := models.HreflangResponse{
		Path:    path,
		Include: seo.ShouldIncludeHreflang(path),
		Links:   []models.HreflangLink{},
	}
	if resp.Include {
		resp.Links = seo.HreflangLinks(h.cfg.SiteURL, path, h.catalog.Locales())
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}
