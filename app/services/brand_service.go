package services

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Rakhulsr/go-catalog/app/configs"
)

var wordSeparator = regexp.MustCompile(`[\s-]+`)

// BrandService guesses a product's brand from its name.
type BrandService struct {
	brands      []string
	ignoreWords map[string]struct{}
}

func NewBrandService(catalog configs.BrandCatalog) *BrandService {
	seen := make(map[string]struct{})
	var brands []string
	for _, list := range catalog.Sectors {
		for _, b := range list {
			b = strings.ToLower(strings.TrimSpace(b))
			if b == "" {
				continue
			}
			if _, ok := seen[b]; ok {
				continue
			}
			seen[b] = struct{}{}
			brands = append(brands, b)
		}
	}
	// longest first so "the north face" wins over "north"
	sort.Slice(brands, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(brands[i]), utf8.RuneCountInString(brands[j])
		if li != lj {
			return li > lj
		}
		return brands[i] < brands[j]
	})

	ignore := make(map[string]struct{}, len(catalog.IgnoreWords))
	for _, w := range catalog.IgnoreWords {
		ignore[strings.ToLower(w)] = struct{}{}
	}

	return &BrandService{brands: brands, ignoreWords: ignore}
}

// Detect returns the first known brand contained in name, or failing that
// the first significant word of the name. ok is false when neither exists.
func (s *BrandService) Detect(name string) (brand string, ok bool) {
	lower := strings.ToLower(name)

	for _, b := range s.brands {
		if strings.Contains(lower, b) {
			return FormatBrand(b), true
		}
	}

	for _, word := range wordSeparator.Split(lower, -1) {
		word = strings.TrimSpace(word)
		if _, ignored := s.ignoreWords[word]; ignored {
			continue
		}
		if utf8.RuneCountInString(word) > 1 {
			return capitalize(word), true
		}
	}
	return "", false
}

// FormatBrand title-cases a lower-case brand name, keeping '&' joins tight.
func FormatBrand(brand string) string {
	switch {
	case strings.Contains(brand, "&"):
		parts := strings.Split(brand, "&")
		for i, p := range parts {
			parts[i] = capitalize(strings.TrimSpace(p))
		}
		return strings.Join(parts, "&")
	case strings.Contains(brand, " "):
		words := strings.Split(brand, " ")
		for i, w := range words {
			words[i] = capitalize(w)
		}
		return strings.Join(words, " ")
	default:
		return capitalize(brand)
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
