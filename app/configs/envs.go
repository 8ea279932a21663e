package configs

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ENV struct {
	AppEnv         string
	Port           string
	DBDriver       string
	DBHost         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBPort         string
	DBSSLMode      string
	DBMaxOpenConns int
	JWTSecret      string
	GoogleClientID string
	GoogleAPIKey   string
	GoogleCSEID    string
	SearchBaseURL  string
	HuggingFaceKey string
	SummaryBaseURL string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	AppAuthKey     string
	AppEncKey      string
	CORSOrigins    []string
	AuthRequired   bool
	DebugMode      bool
	CurrencySymbol string
	SMTPHost       string
	SMTPPort       string
	SMTPUser       string
	SMTPPassword   string
	SMTPFrom       string
}

func (e ENV) IsDevelopment() bool {
	return e.AppEnv == "development"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("APP_PORT", ":3000")
	v.SetDefault("DB_DRIVER", "mysql")
	v.SetDefault("DB_HOST", "127.0.0.1")
	v.SetDefault("DB_PORT", "3306")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 5)
	v.SetDefault("SEARCH_BASE_URL", "https://www.googleapis.com/customsearch/v1")
	v.SetDefault("SUMMARY_BASE_URL", "https://api-inference.huggingface.co/models/csebuetnlp/mT5_multilingual_XLSum")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173")
	v.SetDefault("AUTH_REQUIRED", false)
	v.SetDefault("DEBUG_MODE", false)
	v.SetDefault("CURRENCY_SYMBOL", "€")
	v.SetDefault("SMTP_PORT", "587")
}

// LoadEnv reads .env (when present) and the process environment.
func LoadEnv() ENV {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found")
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	port := v.GetString("APP_PORT")
	if !strings.Contains(port, ":") {
		port = ":" + port
	}

	return ENV{
		AppEnv:         v.GetString("APP_ENV"),
		Port:           port,
		DBDriver:       strings.ToLower(v.GetString("DB_DRIVER")),
		DBHost:         v.GetString("DB_HOST"),
		DBUser:         v.GetString("DB_USER"),
		DBPassword:     v.GetString("DB_PASSWORD"),
		DBName:         v.GetString("DB_NAME"),
		DBPort:         v.GetString("DB_PORT"),
		DBSSLMode:      v.GetString("DB_SSLMODE"),
		DBMaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		GoogleClientID: v.GetString("GOOGLE_CLIENT_ID"),
		GoogleAPIKey:   v.GetString("GOOGLE_API_KEY"),
		GoogleCSEID:    v.GetString("GOOGLE_CSE_ID"),
		SearchBaseURL:  v.GetString("SEARCH_BASE_URL"),
		HuggingFaceKey: v.GetString("HUGGING_FACE_API_KEY"),
		SummaryBaseURL: v.GetString("SUMMARY_BASE_URL"),
		RedisAddr:      v.GetString("REDIS_ADDR"),
		RedisPassword:  v.GetString("REDIS_PASSWORD"),
		RedisDB:        v.GetInt("REDIS_DB"),
		AppAuthKey:     v.GetString("APP_AUTH_KEY"),
		AppEncKey:      v.GetString("APP_ENC_KEY"),
		CORSOrigins:    splitList(v.GetString("CORS_ORIGINS")),
		AuthRequired:   v.GetBool("AUTH_REQUIRED"),
		DebugMode:      v.GetBool("DEBUG_MODE"),
		CurrencySymbol: v.GetString("CURRENCY_SYMBOL"),
		SMTPHost:       v.GetString("SMTP_HOST"),
		SMTPPort:       v.GetString("SMTP_PORT"),
		SMTPUser:       v.GetString("SMTP_USER"),
		SMTPPassword:   v.GetString("SMTP_PASSWORD"),
		SMTPFrom:       v.GetString("SMTP_FROM"),
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
