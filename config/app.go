package config

import (
	"os"
	"strconv"
	"sync"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName     string
	Port        string
	Env         string
	Debug       bool
	CatalogPath string
	BannerPath  string
	MenuPath    string
	PageSize    int
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		AppConfig = &Config{
			AppName:     os.Getenv("APP_NAME"),
			Port:        os.Getenv("PORT"),
			Env:         os.Getenv("APP_ENV"),
			Debug:       os.Getenv("DEBUG") == "true",
			CatalogPath: getenvDefault("CATALOG_PATH", "data/products.json"),
			BannerPath:  getenvDefault("BANNER_PATH", "data/banner.json"),
			MenuPath:    getenvDefault("MENU_PATH", "data/menu.json"),
			PageSize:    getenvInt("PAGE_SIZE", 30),
		}
	})
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
