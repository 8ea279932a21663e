package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/Rakhulsr/go-catalog/app/configs"
)

const maxSummaryLength = 250

type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

type summaryRequest struct {
	Inputs     string            `json:"inputs"`
	Parameters summaryParameters `json:"parameters"`
}

type summaryParameters struct {
	MaxLength int  `json:"max_length"`
	MinLength int  `json:"min_length"`
	DoSample  bool `json:"do_sample"`
}

type summaryOutput struct {
	SummaryText   string `json:"summary_text"`
	GeneratedText string `json:"generated_text"`
}

type huggingFaceSummarizer struct {
	api *apiClient
	cfg configs.SummaryAPIConfig
}

func NewHuggingFaceSummarizer(cfg configs.SummaryAPIConfig) Summarizer {
	return &huggingFaceSummarizer{
		api: newAPIClient("hugging face", cfg.BaseURL, map[string]string{
			"Authorization": "Bearer " + cfg.APIKey,
		}),
		cfg: cfg,
	}
}

func (s *huggingFaceSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	if !s.cfg.Enabled() {
		log.Println("huggingFaceSummarizer.Summarize: summary API not configured")
		return "", nil
	}

	payload, err := json.Marshal(summaryRequest{
		Inputs:     text,
		Parameters: summaryParameters{MaxLength: maxSummaryLength, MinLength: 50},
	})
	if err != nil {
		return "", err
	}

	body, err := s.api.doRequest(ctx, http.MethodPost, "", payload, "application/json")
	if err != nil {
		return "", err
	}

	var outputs []summaryOutput
	if err := json.Unmarshal(body, &outputs); err != nil {
		return "", fmt.Errorf("hugging face: failed to parse response: %w", err)
	}
	if len(outputs) == 0 {
		return "", nil
	}

	summary := outputs[0].SummaryText
	if summary == "" {
		summary = outputs[0].GeneratedText
	}
	return truncateRunes(collapseSpaces(summary), maxSummaryLength), nil
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
