package parts

import (
	"log"
	"os"
	"sync"
)

var (
	cssOnce   sync.Once
	cssCached string
)

// GetCriticalCSS reads the storefront CSS file and returns it as a string.
func GetCriticalCSS() (string, error) {
	css, err := os.ReadFile("assets/storefront.css")
	if err != nil {
		log.Println("Critical CSS error:", err)
		return "", err
	}
	return string(css), nil
}

// GetCriticalCSSCached reads the CSS once and serves it from memory afterwards.
func GetCriticalCSSCached() string {
	cssOnce.Do(func() {
		cssCached, _ = GetCriticalCSS()
	})
	return cssCached
}
