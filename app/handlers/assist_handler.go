package handlers

import (
	"net/http"

	"github.com/Rakhulsr/go-catalog/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

// AssistHandler serves the authoring helpers: brand detection and
// description generation.
type AssistHandler struct {
	responder
	brandSvc       *services.BrandService
	descriptionSvc *services.DescriptionService
}

func NewAssistHandler(rd *render.Render, v *validator.Validate, debug bool, brandSvc *services.BrandService, descriptionSvc *services.DescriptionService) *AssistHandler {
	return &AssistHandler{
		responder:      newResponder(rd, v, debug),
		brandSvc:       brandSvc,
		descriptionSvc: descriptionSvc,
	}
}

type brandRequest struct {
	Name string `json:"name" validate:"required"`
}

type brandResponse struct {
	Brand *string `json:"brand"`
}

func (h *AssistHandler) DetectBrand(w http.ResponseWriter, r *http.Request) {
	var req brandRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}

	var resp brandResponse
	if brand, ok := h.brandSvc.Detect(req.Name); ok {
		resp.Brand = &brand
	}
	h.render.JSON(w, http.StatusOK, resp)
}

type descriptionRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Brand string `json:"brand" validate:"max=100"`
}

func (h *AssistHandler) GenerateDescription(w http.ResponseWriter, r *http.Request) {
	var req descriptionRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}

	h.render.JSON(w, http.StatusOK, h.descriptionSvc.Generate(r.Context(), req.Name, req.Brand))
}
