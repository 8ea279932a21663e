package handlers

import (
	"net/http"

	"github.com/Rakhulsr/go-catalog/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type InventoryHandler struct {
	responder
	inventorySvc *services.InventoryService
}

func NewInventoryHandler(rd *render.Render, v *validator.Validate, debug bool, inventorySvc *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{responder: newResponder(rd, v, debug), inventorySvc: inventorySvc}
}

type stockRequest struct {
	ProductID    string `json:"product_id" validate:"required,uuid"`
	Quantity     *int   `json:"quantity" validate:"required"`
	MinThreshold *int   `json:"min_threshold" validate:"required"`
}

type inventoryItemRequest struct {
	ProductID    string `json:"product_id" validate:"required,uuid"`
	Quantity     *int   `json:"quantity" validate:"required"`
	MinThreshold *int   `json:"min_threshold"`
	Location     string `json:"location" validate:"max=255"`
}

type inventoryItemUpdateRequest struct {
	ProductID    string `json:"product_id" validate:"omitempty,uuid"`
	Quantity     *int   `json:"quantity" validate:"required"`
	MinThreshold *int   `json:"min_threshold"`
	Location     string `json:"location" validate:"max=255"`
}

func (h *InventoryHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.inventorySvc.ListItems(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, items)
}

func (h *InventoryHandler) GetLowStock(w http.ResponseWriter, r *http.Request) {
	items, err := h.inventorySvc.LowStock(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, items)
}

func (h *InventoryHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.inventorySvc.GetItem(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, item)
}

func (h *InventoryHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	var req stockRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}

	item, _, err := h.inventorySvc.UpdateStock(r.Context(), services.StockInput{
		ProductID:    req.ProductID,
		Quantity:     *req.Quantity,
		MinThreshold: *req.MinThreshold,
	})
	if err != nil {
		h.fail(w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, item)
}

func (h *InventoryHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req inventoryItemRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}

	item, err := h.inventorySvc.CreateItem(r.Context(), services.InventoryItemInput{
		ProductID:    req.ProductID,
		Quantity:     *req.Quantity,
		MinThreshold: req.MinThreshold,
		Location:     req.Location,
	})
	if err != nil {
		h.fail(w, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, item)
}

func (h *InventoryHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req inventoryItemUpdateRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}

	item, err := h.inventorySvc.UpdateItem(r.Context(), mux.Vars(r)["id"], services.InventoryItemInput{
		Quantity:     *req.Quantity,
		MinThreshold: req.MinThreshold,
		Location:     req.Location,
	})
	if err != nil {
		h.fail(w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, item)
}

func (h *InventoryHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.inventorySvc.DeleteItem(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type inventoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Address     string `json:"address" validate:"required"`
	Description string `json:"description"`
}

func (req inventoryRequest) input() services.InventoryInput {
	return services.InventoryInput{Name: req.Name, Address: req.Address, Description: req.Description}
}

func (h *InventoryHandler) GetLocations(w http.ResponseWriter, r *http.Request) {
	inventories, err := h.inventorySvc.ListLocations(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, inventories)
}

func (h *InventoryHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	inventory, err := h.inventorySvc.GetLocation(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, inventory)
}

func (h *InventoryHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req inventoryRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}

	inventory, err := h.inventorySvc.CreateLocation(r.Context(), req.input())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, inventory)
}

func (h *InventoryHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	var req inventoryRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}

	inventory, err := h.inventorySvc.UpdateLocation(r.Context(), mux.Vars(r)["id"], req.input())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, inventory)
}

func (h *InventoryHandler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	if err := h.inventorySvc.DeleteLocation(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
