package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Payment PaymentConfig
	PDF     PDFConfig
	SMTP    SMTPConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// PaymentConfig points at the external checkout/subscription provider.
type PaymentConfig struct {
	BaseURL      string
	APIKey       string
	BasicPriceID string
	ProPriceID   string
	SuccessURL   string
	CancelURL    string
}

// PDFConfig points at the HTML-to-PDF rendering service.
type PDFConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SMTPConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	From         string
	SupportInbox string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	pdfTimeout, err := time.ParseDuration(viper.GetString("PDF_TIMEOUT"))
	if err != nil {
		pdfTimeout = 30 * time.Second
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Payment: PaymentConfig{
			BaseURL:      viper.GetString("PAYMENT_BASE_URL"),
			APIKey:       viper.GetString("PAYMENT_API_KEY"),
			BasicPriceID: viper.GetString("PAYMENT_BASIC_PRICE_ID"),
			ProPriceID:   viper.GetString("PAYMENT_PRO_PRICE_ID"),
			SuccessURL:   viper.GetString("PAYMENT_SUCCESS_URL"),
			CancelURL:    viper.GetString("PAYMENT_CANCEL_URL"),
		},
		PDF: PDFConfig{
			BaseURL: viper.GetString("PDF_RENDERER_URL"),
			Timeout: pdfTimeout,
		},
		SMTP: SMTPConfig{
			Host:         viper.GetString("SMTP_HOST"),
			Port:         viper.GetString("SMTP_PORT"),
			User:         viper.GetString("SMTP_USER"),
			Password:     viper.GetString("SMTP_PASSWORD"),
			From:         viper.GetString("SMTP_FROM"),
			SupportInbox: viper.GetString("SUPPORT_INBOX"),
		},
	}

	return config, nil
}
