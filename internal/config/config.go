package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"

	"github.com/Zachkp/zach-dev-api/internal/contact"
)

type Config struct {
	Port        string        `mapstructure:"port"`
	DatabaseURL string        `mapstructure:"database_url"`
	Mode        string        `mapstructure:"mode"`
	CORSOrigins []string      `mapstructure:"cors_origins"`
	Contact     ContactConfig `mapstructure:"contact"`
	SMTP        SMTPConfig    `mapstructure:"smtp"`
	Admin       AdminConfig   `mapstructure:"admin"`
}

type ContactConfig struct {
	Provider  string `mapstructure:"provider"`
	To        string `mapstructure:"to"`
	From      string `mapstructure:"from"`
	AWSRegion string `mapstructure:"aws_region"`
}

type SMTPConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
	User string `mapstructure:"user"`
	Pass string `mapstructure:"pass"`
}

type AdminConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Token   string `mapstructure:"token"`
}

// Environment variable names, matching the ones the site has always used.
var envBindings = map[string]string{
	"port":               "PORT",
	"database_url":       "DATABASE_URL",
	"mode":               "GIN_MODE",
	"cors_origins":       "CORS_ORIGINS",
	"contact.provider":   "CONTACT_PROVIDER",
	"contact.to":         "TO_EMAIL",
	"contact.from":       "FROM_EMAIL",
	"contact.aws_region": "AWS_REGION",
	"smtp.host":          "SMTP_HOST",
	"smtp.port":          "SMTP_PORT",
	"smtp.user":          "SMTP_USER",
	"smtp.pass":          "SMTP_PASS",
	"admin.enabled":      "ADMIN_ENABLED",
	"admin.token":        "ADMIN_TOKEN",
}

// Load reads defaults, then the config file (explicit path or ./config.yaml
// when present), then environment variables.
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	var cfg Config

	v.SetDefault("port", "5001")
	v.SetDefault("database_url", "portfolio.db")
	v.SetDefault("mode", "debug")
	v.SetDefault("cors_origins", []string{"http://localhost:3000", "http://localhost:3001"})
	v.SetDefault("contact.provider", "smtp")
	v.SetDefault("smtp.host", "smtp.gmail.com")
	v.SetDefault("smtp.port", "587")
	v.SetDefault("admin.enabled", false)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return cfg, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			log.Println("No config file found; using defaults and environment variables")
		} else {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		log.Println("Using config file:", v.ConfigFileUsed())
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	return cfg, nil
}

// Mailer is the contact mail configuration in the form contact.New takes.
func (c Config) Mailer() contact.Config {
	return contact.Config{
		Provider:  c.Contact.Provider,
		To:        c.Contact.To,
		From:      c.Contact.From,
		SMTPHost:  c.SMTP.Host,
		SMTPPort:  c.SMTP.Port,
		SMTPUser:  c.SMTP.User,
		SMTPPass:  c.SMTP.Pass,
		AWSRegion: c.Contact.AWSRegion,
	}
}
