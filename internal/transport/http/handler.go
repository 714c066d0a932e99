package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/camal/business-management/internal/app/catalog"
)

// Mapper binds one resource's HTTP payloads to its domain record. Update
// returns the full replacement, Patch only touches the fields the caller
// sent. Both return the version token extracted from the payload.
type Mapper[T any] interface {
	Create(r *http.Request) (*T, error)
	Update(r *http.Request) (*int64, func(*T) error, error)
	Patch(r *http.Request) (*int64, func(*T) error, error)
	Response(rec *T) interface{}
}

// ResourceHandler serves the CRUD endpoints of a single resource.
type ResourceHandler[T any] struct {
	svc    *catalog.Service[T]
	mapper Mapper[T]
	log    zerolog.Logger
}

func NewResourceHandler[T any](svc *catalog.Service[T], mapper Mapper[T], log zerolog.Logger) *ResourceHandler[T] {
	return &ResourceHandler[T]{svc: svc, mapper: mapper, log: log}
}

// Register mounts the resource routes under prefix. The /search alias must
// be registered before the /{id} routes so it is not captured as an id.
func (h *ResourceHandler[T]) Register(r *mux.Router, prefix string) {
	r.HandleFunc(prefix, h.create).Methods(http.MethodPost)
	r.HandleFunc(prefix, h.list).Methods(http.MethodGet)
	r.HandleFunc(prefix+"/search", h.list).Methods(http.MethodGet)
	r.HandleFunc(prefix+"/{id}", h.get).Methods(http.MethodGet)
	r.HandleFunc(prefix+"/{id}", h.update).Methods(http.MethodPut)
	r.HandleFunc(prefix+"/{id}", h.patch).Methods(http.MethodPatch)
	r.HandleFunc(prefix+"/{id}", h.delete).Methods(http.MethodDelete)
}

func (h *ResourceHandler[T]) create(w http.ResponseWriter, r *http.Request) {
	rec, err := h.mapper.Create(r)
	if err != nil {
		writeError(w, err)
		return
	}
	created, err := h.svc.Create(r.Context(), rec)
	if err != nil {
		h.log.Error().Err(err).Msg("create failed")
		writeError(w, err)
		return
	}
	w.Header().Set("Location", r.URL.Path+"/"+h.svc.Meta(created).ID)
	writeJSON(w, http.StatusCreated, h.mapper.Response(created))
}

type pageBody struct {
	Items      []interface{} `json:"items"`
	TotalCount int64         `json:"totalCount"`
	Page       int           `json:"page"`
	Size       int           `json:"size"`
}

func (h *ResourceHandler[T]) list(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		writeError(w, err)
		return
	}
	result, err := h.svc.List(r.Context(), filterParams(r), page)
	if err != nil {
		writeError(w, err)
		return
	}
	items := make([]interface{}, 0, len(result.Items))
	for _, rec := range result.Items {
		items = append(items, h.mapper.Response(rec))
	}
	writeJSON(w, http.StatusOK, pageBody{
		Items:      items,
		TotalCount: result.TotalCount,
		Page:       result.Page,
		Size:       result.Size,
	})
}

func (h *ResourceHandler[T]) get(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.mapper.Response(rec))
}

func (h *ResourceHandler[T]) update(w http.ResponseWriter, r *http.Request) {
	version, apply, err := h.mapper.Update(r)
	if err != nil {
		writeError(w, err)
		return
	}
	rec, err := h.svc.Update(r.Context(), mux.Vars(r)["id"], version, apply)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.mapper.Response(rec))
}

func (h *ResourceHandler[T]) patch(w http.ResponseWriter, r *http.Request) {
	version, apply, err := h.mapper.Patch(r)
	if err != nil {
		writeError(w, err)
		return
	}
	rec, err := h.svc.Patch(r.Context(), mux.Vars(r)["id"], version, apply)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.mapper.Response(rec))
}

func (h *ResourceHandler[T]) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
