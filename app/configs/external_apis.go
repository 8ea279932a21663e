package configs

// SearchAPIConfig configures the web search used for product descriptions.
type SearchAPIConfig struct {
	BaseURL  string
	APIKey   string
	EngineID string
}

func (c SearchAPIConfig) Enabled() bool {
	return c.APIKey != "" && c.EngineID != ""
}

type SummaryAPIConfig struct {
	BaseURL string
	APIKey  string
}

func (c SummaryAPIConfig) Enabled() bool {
	return c.APIKey != ""
}

func (e ENV) SearchAPI() SearchAPIConfig {
	return SearchAPIConfig{
		BaseURL:  e.SearchBaseURL,
		APIKey:   e.GoogleAPIKey,
		EngineID: e.GoogleCSEID,
	}
}

func (e ENV) SummaryAPI() SummaryAPIConfig {
	return SummaryAPIConfig{
		BaseURL: e.SummaryBaseURL,
		APIKey:  e.HuggingFaceKey,
	}
}

// SMTPConfig configures the low-stock alert mailer.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.From != ""
}

func (e ENV) SMTP() SMTPConfig {
	return SMTPConfig{
		Host:     e.SMTPHost,
		Port:     e.SMTPPort,
		Username: e.SMTPUser,
		Password: e.SMTPPassword,
		From:     e.SMTPFrom,
	}
}
