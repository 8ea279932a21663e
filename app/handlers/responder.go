package handlers

import (
	"net/http"

	"github.com/Rakhulsr/go-catalog/app/helpers"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

// responder bundles what every JSON handler needs.
type responder struct {
	render    *render.Render
	validator *validator.Validate
	debug     bool
}

func newResponder(rd *render.Render, v *validator.Validate, debug bool) responder {
	return responder{render: rd, validator: v, debug: debug}
}

func (h responder) fail(w http.ResponseWriter, err error) {
	helpers.WriteError(h.render, w, err, h.debug)
}

func (h responder) decode(r *http.Request, dst interface{}) error {
	return helpers.DecodeAndValidate(r, h.validator, dst)
}
