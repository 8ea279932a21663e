package handlers

import (
	"net/http"

	"github.com/Rakhulsr/go-catalog/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type CategoryHandler struct {
	responder
	categorySvc *services.CategoryService
}

func NewCategoryHandler(rd *render.Render, v *validator.Validate, debug bool, categorySvc *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{responder: newResponder(rd, v, debug), categorySvc: categorySvc}
}

type subCategoryRequest struct {
	ID          string `json:"id" validate:"omitempty,uuid"`
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
}

type categoryRequest struct {
	Name          string               `json:"name" validate:"required,max=100"`
	Description   string               `json:"description"`
	SubCategories []subCategoryRequest `json:"SubCategories" validate:"omitempty,dive"`
}

func (req categoryRequest) input() services.CategoryInput {
	in := services.CategoryInput{Name: req.Name, Description: req.Description}
	if req.SubCategories != nil {
		in.SubCategories = make([]services.SubCategoryInput, 0, len(req.SubCategories))
		for _, s := range req.SubCategories {
			in.SubCategories = append(in.SubCategories, services.SubCategoryInput{
				ID:          s.ID,
				Name:        s.Name,
				Description: s.Description,
			})
		}
	}
	return in
}

func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	includeProducts := r.URL.Query().Get("include") == "products"

	categories, err := h.categorySvc.List(r.Context(), includeProducts)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.categorySvc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}

	category, err := h.categorySvc.Create(r.Context(), req.input())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, category)
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}

	result, err := h.categorySvc.Update(r.Context(), mux.Vars(r)["id"], req.input())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, result)
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.categorySvc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CategoryHandler) GetSubCategory(w http.ResponseWriter, r *http.Request) {
	sub, err := h.categorySvc.GetSubCategory(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, sub)
}

func (h *CategoryHandler) DeleteSubCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.categorySvc.DeleteSubCategory(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
