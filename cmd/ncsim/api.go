package main

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"sync"

	sse "github.com/alexandrevicenzi/go-sse"
	"github.com/gorilla/mux"
)

type carveState struct {
	Phase string `json:"phase"`
	Done  int    `json:"done"`
	Total int    `json:"total"`
}

type api struct {
	http.Handler
	sse     *sse.Server
	pngPath string

	mu    sync.Mutex
	state carveState
}

func newAPI(pngPath string) *api {
	r := mux.NewRouter()

	a := &api{
		Handler: r,
		pngPath: pngPath,
		state:   carveState{Phase: "carving"},
		sse: sse.NewServer(&sse.Options{
			Logger: log.New(io.Discard, "", 0),
		}),
	}

	r.HandleFunc("/api/state", a.getState).Methods("GET")
	r.HandleFunc("/heightmap.png", a.heightmap).Methods("GET")
	r.PathPrefix("/events/").Handler(a.sse)

	return a
}

func (a *api) setProgress(done, total int) {
	a.mu.Lock()
	a.state.Done = done
	a.state.Total = total
	st := a.state
	a.mu.Unlock()

	a.send(st)
}

func (a *api) setDone() {
	a.mu.Lock()
	a.state.Phase = "done"
	st := a.state
	a.mu.Unlock()

	a.send(st)
}

func (a *api) send(st carveState) {
	data, err := json.Marshal(st)
	if err != nil {
		log.Printf("ERROR: marshal json: %+v", err)
		return
	}
	a.sse.SendMessage("/events/progress", sse.SimpleMessage(string(data)))
}

func (a *api) getState(w http.ResponseWriter, req *http.Request) {
	a.mu.Lock()
	st := a.state
	a.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(st)
	if err != nil {
		log.Printf("ERROR: write state: %+v", err)
	}
}

func (a *api) heightmap(w http.ResponseWriter, req *http.Request) {
	a.mu.Lock()
	done := a.state.Phase == "done"
	a.mu.Unlock()

	if !done {
		http.Error(w, "still carving", http.StatusServiceUnavailable)
		return
	}

	http.ServeFile(w, req, a.pngPath)
}
