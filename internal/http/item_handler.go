package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Chinmayee2524/inventory-tracker/internal/apperr"
	"github.com/Chinmayee2524/inventory-tracker/internal/http/apierr"
	"github.com/Chinmayee2524/inventory-tracker/internal/model"
	"github.com/Chinmayee2524/inventory-tracker/internal/service"
	"github.com/Chinmayee2524/inventory-tracker/pkg/validator"
)

type itemHandler struct {
	logger   *slog.Logger
	validate validator.Validator
	itemSvc  service.ItemService
}

func newItemHandler(logger *slog.Logger, validate validator.Validator, itemSvc service.ItemService) *itemHandler {
	return &itemHandler{
		logger:   logger,
		validate: validate,
		itemSvc:  itemSvc,
	}
}

// itemRequest is the create/update body. Numeric fields are pointers so a
// missing field is distinguishable from an explicit zero, which is valid.
type itemRequest struct {
	Name     string       `json:"name" validate:"required"`
	Quantity *int         `json:"quantity" validate:"required,gte=0"`
	Price    *model.Cents `json:"price" validate:"required,gte=0"`
	Supplier string       `json:"supplier" validate:"required"`
}

func (req itemRequest) toParams() service.ItemParams {
	return service.ItemParams{
		Name:     req.Name,
		Quantity: *req.Quantity,
		Price:    *req.Price,
		Supplier: req.Supplier,
	}
}

func (h *itemHandler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.itemSvc.ListItems(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, items)
}

func (h *itemHandler) getItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseItemID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	item, err := h.itemSvc.GetItem(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, item)
}

func (h *itemHandler) createItem(w http.ResponseWriter, r *http.Request) {
	req, err := h.decodeItemRequest(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	item, err := h.itemSvc.CreateItem(r.Context(), req.toParams())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusCreated, item)
}

func (h *itemHandler) updateItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseItemID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	req, err := h.decodeItemRequest(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	item, err := h.itemSvc.UpdateItem(r.Context(), id, req.toParams())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, item)
}

func (h *itemHandler) deleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseItemID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if err := h.itemSvc.DeleteItem(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseItemID parses the path id, which must be a positive integer.
func parseItemID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.ErrInvalidItemID.WrapParent(err)
	}
	return id, nil
}

// decodeItemRequest decodes and validates a create/update body. Validation
// errors pass through unwrapped so the response carries the per-field
// violations.
func (h *itemHandler) decodeItemRequest(r *http.Request) (itemRequest, error) {
	defer r.Body.Close()

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return itemRequest{}, apperr.ValidationErr.WrapParent(err)
	}

	if err := h.validate.Validate(req); err != nil {
		return itemRequest{}, err
	}

	return req, nil
}

func (h *itemHandler) respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.ErrorContext(r.Context(), "error encoding response",
			slog.Any("error", err))
	}
}

func (h *itemHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	res := apierr.New(err)

	logLevel := slog.LevelInfo
	if res.StatusCode >= 500 {
		logLevel = slog.LevelError
	} else if res.StatusCode >= 400 && res.StatusCode != http.StatusNotFound {
		logLevel = slog.LevelWarn
	}
	h.logger.Log(r.Context(), logLevel, "http response error", slog.Any("error", err))

	h.respondJSON(w, r, res.StatusCode, res)
}
