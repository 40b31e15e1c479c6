package automatic

import (
	"encoding/json"
	"expvar"
	"net/http"

	"github.com/gorilla/mux"
)

// Status is the progress of a batch of autoplayed games.
type Status struct {
	Playing     bool  `json:"playing"`
	GamesPlayed int64 `json:"games_played"`
}

func currentStatus() Status {
	return Status{
		Playing:     IsPlaying.Value() > 0,
		GamesPlayed: GamesCounter.Value(),
	}
}

func handleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(currentStatus()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// NewStatusRouter serves the autoplay counters, as JSON on /status and in
// expvar form on /debug/vars, so that a long batch can be watched.
func NewStatusRouter() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/status", handleStatus).Methods("GET")
	r.Handle("/debug/vars", expvar.Handler()).Methods("GET")
	return r
}
