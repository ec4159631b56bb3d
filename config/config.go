// Package config, uygulamanın tüm konfigürasyonunu merkezi olarak yönetir.
//
// Kaynak önceliği (yüksekten düşüğe):
//  1. Environment variable'lar
//  2. .env dosyası (godotenv: sadece henüz set edilmemiş key'leri yükler)
//  3. --config ile verilen opsiyonel config dosyası (yaml/json/toml)
//  4. Varsayılanlar
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Config, uygulamanın tüm konfigürasyon değerlerini taşır.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Log      LogConfig
	CORS     CORSConfig
	Cache    CacheConfig
}

// ServerConfig, HTTP server ayarları.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig, SQLite database ayarları.
type DatabaseConfig struct {
	Path string // SQLite dosya yolu (ör: ./data/directory.db)
}

// JWTConfig, access token ayarları.
type JWTConfig struct {
	Secret            string // Token imzalama anahtarı: GİZLİ TUTULMALI
	AccessTokenExpiry int    // Dakika cinsinden
}

// LogConfig, zerolog ayarları.
type LogConfig struct {
	Level  string
	Format string
}

// CORSConfig, izin verilen origin listesi.
type CORSConfig struct {
	AllowedOrigins []string
}

// CacheConfig, in-memory cache süreleri.
type CacheConfig struct {
	CategoryTTL time.Duration
}

var defaults = map[string]any{
	"SERVER_HOST":                "0.0.0.0",
	"SERVER_PORT":                9090,
	"DATABASE_PATH":              "./data/directory.db",
	"JWT_SECRET":                 "",
	"JWT_ACCESS_EXPIRY_MINUTES":  60,
	"LOG_LEVEL":                  "info",
	"LOG_FORMAT":                 "console",
	"CORS_ALLOWED_ORIGINS":       "http://localhost:3000",
	"CATEGORY_CACHE_TTL_SECONDS": 30,
}

// Load, Config'i oluşturur. configFile boş olabilir.
func Load(configFile string) (*Config, error) {
	// .env yoksa hata vermez; production'da gerçek env variable'lar kullanılır.
	_ = godotenv.Load()

	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	return fromViper(v)
}

// fromViper, viper instance'ından Config üretir. Testler env'e dokunmadan
// kendi viper'larını verebilsin diye Load'dan ayrıdır.
func fromViper(v *viper.Viper) (*Config, error) {
	port, err := cast.ToIntE(v.Get("SERVER_PORT"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid SERVER_PORT: %d out of range", port)
	}

	accessExpiry, err := cast.ToIntE(v.Get("JWT_ACCESS_EXPIRY_MINUTES"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_EXPIRY_MINUTES: %w", err)
	}

	cacheTTL, err := cast.ToIntE(v.Get("CATEGORY_CACHE_TTL_SECONDS"))
	if err != nil {
		return nil, fmt.Errorf("invalid CATEGORY_CACHE_TTL_SECONDS: %w", err)
	}

	jwtSecret := v.GetString("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: port,
		},
		Database: DatabaseConfig{
			Path: v.GetString("DATABASE_PATH"),
		},
		JWT: JWTConfig{
			Secret:            jwtSecret,
			AccessTokenExpiry: accessExpiry,
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Cache: CacheConfig{
			CategoryTTL: time.Duration(cacheTTL) * time.Second,
		},
	}

	return cfg, nil
}

// Addr, HTTP server'ın dinleyeceği adresi döner (ör: "0.0.0.0:9090").
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
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
