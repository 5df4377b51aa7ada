// Package api serves the admin and reporting surfaces over HTTP: settings
// read/update/reset and tick history queries. The engine itself never
// depends on this package.
package api

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"citytick/game/settings"
)

type Server struct {
	DB       *gorm.DB
	Settings *settings.Provider
	Port     int
}

// Start launches the HTTP server in a goroutine.
func (s *Server) Start() {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/settings", s.handleSettings)
	mux.HandleFunc("/api/v1/settings/reset", s.handleSettingsReset)
	mux.HandleFunc("/api/v1/settings/changes", s.handleSettingsChanges)

	mux.HandleFunc("/api/v1/ticks", s.handleTickHistory)
	mux.HandleFunc("/api/v1/ticks/stats", s.handleTickStats)
	mux.HandleFunc("/api/v1/ticks/", s.handleTickDetail)

	addr := fmt.Sprintf(":%d", s.Port)
	log.Printf("HTTP API starting on %s", addr)
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Printf("HTTP server error: %v", err)
		}
	}()
}

// tickIDFromPath extracts the trailing id from /api/v1/ticks/{id}.
func tickIDFromPath(path string) (string, bool) {
	rest := strings.TrimPrefix(path, "/api/v1/ticks/")
	if rest == "" || strings.Contains(rest, "/") {
		return "", false
	}
	return rest, true
}
