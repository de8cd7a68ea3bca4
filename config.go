package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"school-meal-api/neis"
)

// Config is read from, in increasing priority: defaults, the environment
// (after .env), an optional YAML file, then command line flags.
type Config struct {
	Port       string `yaml:"port"`
	BaseURL    string `yaml:"neis_base_url"`
	OfficeCode string `yaml:"neis_office_code"`
	SchoolCode string `yaml:"neis_school_code"`
	APIKey     string `yaml:"neis_api_key"`
	Timezone   string `yaml:"timezone"`
	Title      string `yaml:"title"`
}

func defaultConfig() Config {
	return Config{
		Port:       "8080",
		BaseURL:    neis.DefaultBaseURL,
		OfficeCode: "B10",     // 서울특별시교육청
		SchoolCode: "7010806", // 상암고등학교
		Timezone:   "Asia/Seoul",
		Title:      "상암고 급식 조회",
	}
}

// loadConfig builds the Config and validates it. override, if not nil,
// runs after the YAML file so command line flags win over every source.
func loadConfig(path string, override func(*Config)) (Config, error) {
	// A missing .env is fine; the environment may already be set.
	godotenv.Load()

	cfg := defaultConfig()
	setFromEnv(&cfg.Port, "PORT")
	setFromEnv(&cfg.BaseURL, "NEIS_BASE_URL")
	setFromEnv(&cfg.OfficeCode, "NEIS_OFFICE_CODE")
	setFromEnv(&cfg.SchoolCode, "NEIS_SCHOOL_CODE")
	setFromEnv(&cfg.APIKey, "NEIS_API_KEY")
	setFromEnv(&cfg.Timezone, "MEAL_TIMEZONE")
	setFromEnv(&cfg.Title, "MEAL_TITLE")

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		// Keys absent from the file keep their current value.
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if override != nil {
		override(&cfg)
	}

	if cfg.OfficeCode == "" || cfg.SchoolCode == "" {
		return Config{}, fmt.Errorf("office and school codes are required")
	}
	if _, err := cfg.location(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func (c Config) location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c Config) neisConfig() neis.Config {
	return neis.Config{
		BaseURL:    c.BaseURL,
		OfficeCode: c.OfficeCode,
		SchoolCode: c.SchoolCode,
		APIKey:     c.APIKey,
		Timeout:    neis.DefaultTimeout,
	}
}
