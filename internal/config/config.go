// Package config загружает конфигурацию сервиса из TOML файла
//
// Здесь только инфраструктурные настройки процесса. Фестивальные настройки
// (диапазоны дат, ключи внешнего API, страницы редиректов) живут в Config
// Store и меняются админом без перезапуска
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Server      ServerConfig      `toml:"server"`
	Logs        LogsConfig        `toml:"logs"`
	Database    DatabaseConfig    `toml:"database"`
	Metrics     MetricsConfig     `toml:"metrics"`
	Redis       RedisConfig       `toml:"redis"`
	BookingForm BookingFormConfig `toml:"booking_form"`
	BookingAPI  BookingAPIConfig  `toml:"booking_api"`
	Admin       AdminConfig       `toml:"admin"`
	Migrations  MigrationsConfig  `toml:"migrations"`
}

type ServerConfig struct {
	HTTPPort     int `toml:"http_port"`
	ReadTimeout  int `toml:"read_timeout"`  // секунды
	WriteTimeout int `toml:"write_timeout"` // секунды
	IdleTimeout  int `toml:"idle_timeout"`  // секунды
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN собирает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type BookingFormConfig struct {
	TokenSecret   string `toml:"token_secret"`
	TokenTTL      int    `toml:"token_ttl"` // секунды
	SessionCookie string `toml:"session_cookie"`
}

type BookingAPIConfig struct {
	Timeout int `toml:"timeout"` // секунды
}

type AdminConfig struct {
	Token string `toml:"token"`
}

type MigrationsConfig struct {
	Path string `toml:"path"`
}

// Load читает и валидирует конфигурацию из файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("%w: server.http_port is required", ErrInvalidConfig)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if c.BookingForm.TokenSecret == "" {
		return fmt.Errorf("%w: booking_form.token_secret is required", ErrInvalidConfig)
	}
	if c.BookingForm.SessionCookie == "" {
		return fmt.Errorf("%w: booking_form.session_cookie is required", ErrInvalidConfig)
	}
	return nil
}
