package services

import (
	"context"
	"log"
	"math/rand"
	"strings"

	"github.com/Rakhulsr/go-catalog/app/configs"
)

type Description struct {
	Description   string  `json:"description"`
	ImageURL      *string `json:"imageUrl"`
	DetectedBrand *string `json:"detectedBrand,omitempty"`
}

// DescriptionService writes a marketing description for a product. Web
// search and summarization failures never fail the call: they degrade to
// the raw search text and then to a category template.
type DescriptionService struct {
	searcher   ProductSearcher
	summarizer Summarizer
	templates  configs.TemplateCatalog
	pick       func(n int) int
}

func NewDescriptionService(searcher ProductSearcher, summarizer Summarizer, templates configs.TemplateCatalog) *DescriptionService {
	return &DescriptionService{
		searcher:   searcher,
		summarizer: summarizer,
		templates:  templates,
		pick:       rand.Intn,
	}
}

// WithPicker replaces the random template picker.
func (s *DescriptionService) WithPicker(pick func(n int) int) *DescriptionService {
	s.pick = pick
	return s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func searchQuery(name, brand string) string {
	if brand == "" || strings.Contains(strings.ToLower(name), strings.ToLower(brand)) {
		return name
	}
	return brand + " " + name
}

func (s *DescriptionService) Generate(ctx context.Context, name, brand string) *Description {
	var result *SearchResult
	if s.searcher != nil {
		var err error
		result, err = s.searcher.Search(ctx, searchQuery(name, brand))
		if err != nil {
			log.Printf("DescriptionService.Generate: search failed: %v", err)
			result = nil
		}
	}

	if result == nil || result.Description == "" {
		imageURL := ""
		if result != nil {
			imageURL = result.ImageURL
		}
		return s.FromTemplate(name, brand, imageURL)
	}

	if s.summarizer != nil {
		summary, err := s.summarizer.Summarize(ctx, result.Description)
		if err != nil {
			log.Printf("DescriptionService.Generate: summarization failed: %v", err)
		} else if summary != "" {
			return &Description{Description: summary, ImageURL: optional(result.ImageURL)}
		}
	}

	return &Description{Description: result.Description, ImageURL: optional(result.ImageURL)}
}

// TemplateCategory returns the template group matching name or brand.
func (s *DescriptionService) TemplateCategory(name, brand string) configs.TemplateCategory {
	nameLower := strings.ToLower(name)
	brandLower := strings.ToLower(brand)

	for _, category := range s.templates.Categories {
		for _, kw := range category.Keywords {
			if strings.Contains(nameLower, kw) || (brandLower != "" && strings.Contains(brandLower, kw)) {
				return category
			}
		}
	}
	return configs.TemplateCategory{Name: "default", Templates: s.templates.Default}
}

func (s *DescriptionService) FromTemplate(name, brand, imageURL string) *Description {
	category := s.TemplateCategory(name, brand)
	templates := category.Templates
	if len(templates) == 0 {
		templates = s.templates.Default
	}

	template := templates[s.pick(len(templates))]
	text := strings.Replace(template, s.templates.Placeholder, name, 1)

	return &Description{
		Description:   text,
		ImageURL:      optional(imageURL),
		DetectedBrand: optional(brand),
	}
}
