package config

import (
	"encoding/json"
	"log"
	"os"
	"strconv"
)

const EnvProduction = "production"
const EnvDevelopment = "development"

type Configuration struct {
	ApiPort     string `json:"api_port"`
	Environment string `json:"environment"` // "development" ou "production"
	AppURL      string `json:"app_url"`     // base usada nos links de reset de senha

	Database string `json:"database"` // "sqlite3" ou "postgres"
	DbHost   string `json:"db_host"`
	DbPort   string `json:"db_port"`
	DbUser   string `json:"db_user"`
	DbName   string `json:"db_name"`
	DbPass   string `json:"db_pass"`

	Security struct {
		JwtSecret           string `json:"jwt_secret"`
		TokenValidDays      int    `json:"token_valid_days"`
		ResetTokenValidMins int    `json:"reset_token_valid_minutes"`
		MinPasswordLen      int    `json:"min_password_len"`
	} `json:"security"`

	Smtp struct {
		Host string `json:"host"`
		Port int    `json:"port"`
		User string `json:"user"`
		Pass string `json:"pass"`
		From string `json:"from"`
	} `json:"smtp"`
}

func Get(path string) Configuration {
	b, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}
	var c Configuration
	if err := json.Unmarshal(b, &c); err != nil {
		log.Fatal(err)
	}
	return WithDefaults(c)
}

// WithDefaults preenche os campos vazios (pra evitar nil/zero chato).
// Env sempre ganha do arquivo para segredos (troca sem rebuild).
func WithDefaults(c Configuration) Configuration {
	if c.ApiPort == "" {
		c.ApiPort = "8080"
	}
	if c.Environment == "" {
		c.Environment = getenv("ENVIRONMENT", EnvDevelopment)
	}
	if c.AppURL == "" {
		c.AppURL = "http://localhost:" + c.ApiPort
	}
	if c.Database == "" {
		c.Database = "sqlite3"
	}
	if c.Security.TokenValidDays <= 0 {
		c.Security.TokenValidDays = 7
	}
	if c.Security.ResetTokenValidMins <= 0 {
		c.Security.ResetTokenValidMins = 10
	}
	if c.Security.MinPasswordLen <= 0 {
		c.Security.MinPasswordLen = 8
	}

	if s := os.Getenv("JWT_SECRET"); s != "" {
		c.Security.JwtSecret = s
	}
	if c.Security.JwtSecret == "" && c.Environment != EnvProduction {
		c.Security.JwtSecret = "CHANGE_ME"
	}
	if h := os.Getenv("SMTP_HOST"); h != "" {
		c.Smtp.Host = h
	}
	if p := os.Getenv("SMTP_PORT"); p != "" {
		if port, err := strconv.Atoi(p); err == nil {
			c.Smtp.Port = port
		}
	}
	if u := os.Getenv("SMTP_USER"); u != "" {
		c.Smtp.User = u
	}
	if p := os.Getenv("SMTP_PASS"); p != "" {
		c.Smtp.Pass = p
	}
	if f := os.Getenv("SMTP_FROM"); f != "" {
		c.Smtp.From = f
	}

	return c
}

func (c Configuration) IsProduction() bool {
	return c.Environment == EnvProduction
}

func (c Configuration) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
