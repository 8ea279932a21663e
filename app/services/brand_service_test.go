package services_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/Rakhulsr/go-catalog/app/configs"
	"github.com/Rakhulsr/go-catalog/app/services"
)

func TestDetectBrand(t *testing.T) {
	svc := services.NewBrandService(configs.BrandCatalog{
		Sectors: map[string][]string{
			"tech":    {"apple", "samsung", "north"},
			"fashion": {"the north face", "h&m", " Apple ", "ralph lauren"},
		},
		IgnoreWords: []string{"le", "nouveau", "pour"},
	})

	tests := []struct {
		name      string
		input     string
		wantBrand string
		wantOK    bool
	}{
		{name: "known brand", input: "iPhone 13 Apple 128 Go", wantBrand: "Apple", wantOK: true},
		{name: "case insensitive", input: "SAMSUNG Galaxy S23", wantBrand: "Samsung", wantOK: true},
		{name: "longest brand wins", input: "Veste The North Face homme", wantBrand: "The North Face", wantOK: true},
		{name: "ampersand", input: "T-shirt H&M coton", wantBrand: "H&M", wantOK: true},
		{name: "multi word", input: "Polo Ralph Lauren", wantBrand: "Ralph Lauren", wantOK: true},
		{name: "first significant word", input: "Le nouveau robot-cuiseur", wantBrand: "Robot", wantOK: true},
		{name: "only short words", input: "le x", wantOK: false},
		{name: "empty", input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)

			brand, ok := svc.Detect(tt.input)
			c.Assert(ok, qt.Equals, tt.wantOK)
			c.Assert(brand, qt.Equals, tt.wantBrand)
		})
	}
}

func TestFormatBrand(t *testing.T) {
	c := qt.New(t)

	c.Assert(services.FormatBrand("bang & olufsen"), qt.Equals, "Bang&Olufsen")
	c.Assert(services.FormatBrand("western digital"), qt.Equals, "Western Digital")
	c.Assert(services.FormatBrand("hermès"), qt.Equals, "Hermès")
	c.Assert(services.FormatBrand("électrolux"), qt.Equals, "Électrolux")
}

func TestDetectBrandWithEmbeddedCatalog(t *testing.T) {
	c := qt.New(t)

	data, err := configs.LoadCatalogData()
	c.Assert(err, qt.IsNil)
	svc := services.NewBrandService(data.Brands)

	brand, ok := svc.Detect("Aspirateur Dyson V15")
	c.Assert(ok, qt.IsTrue)
	c.Assert(brand, qt.Equals, "Dyson")
}
