package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/camal/business-management/internal/app/catalog/domain"
)

// Handlers groups the per-resource handlers mounted by the router.
type Handlers struct {
	Products *ResourceHandler[domain.Product]
	Tests    *ResourceHandler[domain.TestRecord]
	Allops   *ResourceHandler[domain.Allop]
	Guards   *ResourceHandler[domain.Guard]
	Massons  *ResourceHandler[domain.Masson]
}

func NewRouter(log zerolog.Logger, metrics *Metrics, h Handlers) *mux.Router {
	r := mux.NewRouter()
	r.Use(Recoverer(log), RequestLogger(log), metrics.Middleware())

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	h.Products.Register(r, "/api/v1/products")
	h.Tests.Register(r, "/api/v1/tests")
	h.Allops.Register(r, "/api/v1/allops")
	h.Guards.Register(r, "/api/v1/guards")
	h.Massons.Register(r, "/api/v1/massons")
	return r
}
