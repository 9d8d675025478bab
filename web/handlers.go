// ABOUTME: Route handlers for health, the help page, agent rolls, bans, and random maps.
// ABOUTME: JSON responses share writeJSON; client errors carry an "error" field.
package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/2389-research/vabot/agents"
	"github.com/2389-research/vabot/party"
)

const defaultBanCount = 2

type agentsResponse struct {
	Mode   agents.Mode `json:"mode"`
	Title  string      `json:"title"`
	Agents []string    `json:"agents"`
}

type banResponse struct {
	Agents []string `json:"agents"`
}

type mapResponse struct {
	Map string `json:"map"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderHelpPage(w); err != nil {
		http.Error(w, "render failed", http.StatusInternalServerError)
	}
}

// handleAgents rolls a team for ?mode=, defaulting to the default mode.
func (s *Server) handleAgents(w http.ResponseWriter, r *http.Request) {
	mode := agents.Mode(r.URL.Query().Get("mode"))
	if mode == "" {
		mode = agents.ModeDefault
	}

	picks, err := s.selector.Select(mode)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, agentsResponse{Mode: mode, Title: mode.Title(), Agents: picks})
}

// handleBan draws ?count= distinct agents; the selector clamps the count.
func (s *Server) handleBan(w http.ResponseWriter, r *http.Request) {
	count := defaultBanCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "count must be an integer"})
			return
		}
		count = n
	}
	writeJSON(w, http.StatusOK, banResponse{Agents: s.selector.Ban(count)})
}

func (s *Server) handleRandomMap(w http.ResponseWriter, r *http.Request) {
	var maps []string
	if s.maps != nil {
		maps = s.maps.Load(s.logger)
	}
	chosen, ok := party.PickMap(s.rand, maps)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "map list is empty"})
		return
	}
	writeJSON(w, http.StatusOK, mapResponse{Map: chosen})
}
