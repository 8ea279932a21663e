package helpers_test

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/Rakhulsr/go-catalog/app/helpers"
	"github.com/Rakhulsr/go-catalog/app/services"
)

type itemRequest struct {
	Name     string `json:"name" validate:"required,max=10"`
	Quantity *int   `json:"quantity" validate:"required,gte=0"`
	Link     string `json:"image_url" validate:"omitempty,url"`
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantFields []string
	}{
		{name: "valid", body: `{"name":"Jean","quantity":3}`},
		{name: "empty body", body: ``, wantFields: []string{"body"}},
		{name: "malformed", body: `{"name":`, wantFields: []string{"body"}},
		{name: "wrong type", body: `{"name":"Jean","quantity":"three"}`, wantFields: []string{"quantity"}},
		{name: "missing fields", body: `{}`, wantFields: []string{"name", "quantity"}},
		{name: "rules", body: `{"name":"much too long name","quantity":-1,"image_url":"nope"}`, wantFields: []string{"name", "quantity", "image_url"}},
	}

	v := helpers.NewValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)

			req := httptest.NewRequest("POST", "/", strings.NewReader(tt.body))
			var dst itemRequest
			err := helpers.DecodeAndValidate(req, v, &dst)

			if tt.wantFields == nil {
				c.Assert(err, qt.IsNil)
				c.Assert(dst.Name, qt.Equals, "Jean")
				c.Assert(*dst.Quantity, qt.Equals, 3)
				return
			}

			var verr *services.ValidationError
			c.Assert(errors.As(err, &verr), qt.IsTrue)
			fields := make([]string, 0, len(verr.Details))
			for _, d := range verr.Details {
				fields = append(fields, d.Field)
			}
			c.Assert(fields, qt.DeepEquals, tt.wantFields)
		})
	}
}

func TestValidationMessages(t *testing.T) {
	c := qt.New(t)

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"quantity":2}`))
	err := helpers.DecodeAndValidate(req, helpers.NewValidator(), &itemRequest{})

	var verr *services.ValidationError
	c.Assert(errors.As(err, &verr), qt.IsTrue)
	c.Assert(verr.Details, qt.DeepEquals, []services.FieldError{{Field: "name", Message: "name is required"}})
}
