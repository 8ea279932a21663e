package handlers

import (
	"net/http"

	"github.com/Rakhulsr/go-catalog/app/repositories"
	"github.com/Rakhulsr/go-catalog/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type ProductHandler struct {
	responder
	productSvc *services.ProductService
}

func NewProductHandler(rd *render.Render, v *validator.Validate, debug bool, productSvc *services.ProductService) *ProductHandler {
	return &ProductHandler{responder: newResponder(rd, v, debug), productSvc: productSvc}
}

type attributeRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Value string `json:"value"`
}

type productRequest struct {
	Name          string             `json:"name" validate:"required,max=200"`
	Description   string             `json:"description"`
	Price         *decimal.Decimal   `json:"price" validate:"required"`
	Brand         string             `json:"brand" validate:"max=100"`
	ImageURL      string             `json:"image_url" validate:"omitempty,url"`
	WeightVolume  string             `json:"weight_volume" validate:"max=50"`
	SubCategoryID string             `json:"sub_category_id" validate:"required,uuid"`
	Attributes    []attributeRequest `json:"attributes" validate:"omitempty,dive"`
}

func (req productRequest) input() services.ProductInput {
	in := services.ProductInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         *req.Price,
		Brand:         req.Brand,
		ImageURL:      req.ImageURL,
		WeightVolume:  req.WeightVolume,
		SubCategoryID: req.SubCategoryID,
	}
	if req.Attributes != nil {
		in.Attributes = make([]services.AttributeInput, 0, len(req.Attributes))
		for _, a := range req.Attributes {
			in.Attributes = append(in.Attributes, services.AttributeInput{Name: a.Name, Value: a.Value})
		}
	}
	return in
}

func (h *ProductHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productSvc.List(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.productSvc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, product)
}

func parsePrice(field, raw string, verr *services.ValidationError) *decimal.Decimal {
	if raw == "" {
		return nil
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		verr.Details = append(verr.Details, services.FieldError{Message: field + " must be a number", Field: field})
		return nil
	}
	return &price
}

func (h *ProductHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	verr := &services.ValidationError{}
	filter := repositories.ProductFilter{
		Query:         q.Get("query"),
		MinPrice:      parsePrice("minPrice", q.Get("minPrice"), verr),
		MaxPrice:      parsePrice("maxPrice", q.Get("maxPrice"), verr),
		CategoryID:    q.Get("category"),
		SubCategoryID: q.Get("subcategory"),
	}
	if len(verr.Details) > 0 {
		h.fail(w, verr)
		return
	}

	products, err := h.productSvc.Search(r.Context(), filter)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, products)
}

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}

	product, err := h.productSvc.Create(r.Context(), req.input())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, product)
}

func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}

	product, err := h.productSvc.Update(r.Context(), mux.Vars(r)["id"], req.input())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.productSvc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
