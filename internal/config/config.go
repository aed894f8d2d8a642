// Package config loads the runtime configuration of fundledger.
//
// Values come from environment variables, a .env file in the working
// directory and an optional configuration file, in this order of precedence.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/text/currency"
)

type Config struct {
	// HTTP API
	APIURL           string
	CORSAllowOrigins []string
	EnablePprof      bool
	WriteRateLimit   float64
	WriteRateBurst   int

	// Database
	DBPath string

	// Authentication
	JWTSecret string
	JWTIssuer string
	TokenTTL  time.Duration

	// Accounting
	Currency                string
	FundingIncomeAccount    string
	AllocationDebitAccount  string
	AllocationCreditAccount string

	// Events
	AMQPURL      string
	AMQPExchange string
}

// New returns a viper instance with all defaults set that reads
// environment variables.
//
// If path is not empty, the configuration file at path is read, too.
func New(path string) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault("db_path", "data/fundledger.db")
	v.SetDefault("jwt_issuer", "fundledger")
	v.SetDefault("token_ttl", 24*time.Hour)
	v.SetDefault("currency", "USD")
	v.SetDefault("amqp_exchange", "fundledger")
	v.SetDefault("write_rate_limit", 0)
	v.SetDefault("write_rate_burst", 20)
	v.SetDefault("enable_pprof", false)

	// Keys are looked up as upper case environment variables,
	// e.g. api_url is read from API_URL
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return v, nil
}

// Load loads the .env file if it exists and reads the configuration.
func Load(path string) (Config, error) {
	// The .env file is optional
	_ = godotenv.Load()

	v, err := New(path)
	if err != nil {
		return Config{}, err
	}

	return FromViper(v), nil
}

// FromViper reads the configuration from a viper instance.
func FromViper(v *viper.Viper) Config {
	return Config{
		APIURL:           v.GetString("api_url"),
		CORSAllowOrigins: strings.Fields(v.GetString("cors_allow_origins")),
		EnablePprof:      v.GetBool("enable_pprof"),
		WriteRateLimit:   v.GetFloat64("write_rate_limit"),
		WriteRateBurst:   v.GetInt("write_rate_burst"),

		DBPath: v.GetString("db_path"),

		JWTSecret: v.GetString("jwt_secret"),
		JWTIssuer: v.GetString("jwt_issuer"),
		TokenTTL:  v.GetDuration("token_ttl"),

		Currency:                strings.ToUpper(strings.TrimSpace(v.GetString("currency"))),
		FundingIncomeAccount:    v.GetString("funding_income_account"),
		AllocationDebitAccount:  v.GetString("allocation_debit_account"),
		AllocationCreditAccount: v.GetString("allocation_credit_account"),

		AMQPURL:      v.GetString("amqp_url"),
		AMQPExchange: v.GetString("amqp_exchange"),
	}
}

// Validate validates the configuration and returns an error listing
// all problems found.
func (c Config) Validate() error {
	var problems []string

	if c.APIURL == "" {
		problems = append(problems, "API_URL must be set")
	} else if u, err := url.Parse(c.APIURL); err != nil {
		problems = append(problems, fmt.Sprintf("API_URL '%s' is not a valid URL: %v", c.APIURL, err))
	} else if !u.IsAbs() {
		problems = append(problems, fmt.Sprintf("API_URL '%s' must be an absolute URL", c.APIURL))
	}

	if c.DBPath == "" {
		problems = append(problems, "DB_PATH must not be empty")
	}

	if c.JWTSecret == "" {
		problems = append(problems, "JWT_SECRET must be set")
	}

	if c.TokenTTL <= 0 {
		problems = append(problems, fmt.Sprintf("TOKEN_TTL must be positive, got %s", c.TokenTTL))
	}

	if _, err := currency.ParseISO(c.Currency); err != nil {
		problems = append(problems, fmt.Sprintf("CURRENCY '%s' is not an ISO 4217 currency code", c.Currency))
	}

	if c.WriteRateLimit < 0 {
		problems = append(problems, "WRITE_RATE_LIMIT must not be negative")
	}

	if c.WriteRateLimit > 0 && c.WriteRateBurst < 1 {
		problems = append(problems, "WRITE_RATE_BURST must be at least 1 when WRITE_RATE_LIMIT is set")
	}

	if c.AllocationDebitAccount != "" && c.AllocationDebitAccount == c.AllocationCreditAccount {
		problems = append(problems, "ALLOCATION_DEBIT_ACCOUNT and ALLOCATION_CREDIT_ACCOUNT must differ")
	}

	if c.AMQPURL != "" {
		if u, err := url.Parse(c.AMQPURL); err != nil {
			problems = append(problems, fmt.Sprintf("AMQP_URL is invalid: %v", err))
		} else if u.Scheme != "amqp" && u.Scheme != "amqps" {
			problems = append(problems, fmt.Sprintf("AMQP_URL scheme '%s' must be 'amqp' or 'amqps'", u.Scheme))
		}

		if c.AMQPExchange == "" {
			problems = append(problems, "AMQP_EXCHANGE must not be empty when AMQP_URL is set")
		}
	}

	if len(problems) > 0 {
		return errors.New("configuration invalid: " + strings.Join(problems, "; "))
	}

	return nil
}

// URL returns the parsed API URL. It must only be called on a
// validated configuration.
func (c Config) URL() *url.URL {
	u, _ := url.Parse(c.APIURL)
	return u
}

// CurrencyUnit returns the configured currency. It must only be called
// on a validated configuration.
func (c Config) CurrencyUnit() currency.Unit {
	unit, _ := currency.ParseISO(c.Currency)
	return unit
}
