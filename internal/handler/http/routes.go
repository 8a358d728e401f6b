package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// assetIDParam only matches UUID characters, so static paths such as
// /api/nft/mint never fall through to the id routes.
const assetIDParam = "{id:[0-9a-f-]+}"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.settings.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.settings.RequestTimeout))
	}

	router.Get("/api/version", h.getServerVersion)
	if h.settings.Gatherer != nil {
		router.Handle("/metrics", promhttp.HandlerFor(h.settings.Gatherer, promhttp.HandlerOpts{}))
	}

	// state changes carrying a body are covered by the integrity check
	router.Group(func(r chi.Router) {
		r.Use(h.withHashCheck)

		r.Post("/api/nft/mint", h.mint)
		r.Post("/api/nft/transfer", h.transfer)
		r.Post("/api/nft/airdrop", h.airdrop)
		r.Post("/api/nft/"+assetIDParam+"/viewing-key", h.issueViewingKey)
		r.Post("/api/ibc/import", h.importPacket)
	})

	router.Get("/api/nft/", h.list)
	router.Get("/api/nft/"+assetIDParam, h.view)
	router.Post("/api/nft/"+assetIDParam+"/stake", h.stake)
	router.Post("/api/nft/"+assetIDParam+"/unstake", h.unstake)
	router.Get("/api/ibc/export/"+assetIDParam, h.export)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
