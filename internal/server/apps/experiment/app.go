// Package experiment serves the experiment configuration to the front-end in
// the formats it can consume directly.
package experiment

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/robbyt/go-supervisor/runnables/httpserver"

	"github.com/atlanticdynamic/expconfig/internal/config"
)

// Route paths
const (
	PathJSON   = "/config.json"
	PathModule = "/config.js"
	PathCSS    = "/experiment.css"
	PathHealth = "/healthz"
)

// App serves one experiment configuration. The bodies are rendered once at
// construction since the configuration cannot change afterwards.
type App struct {
	id string

	jsonBody   []byte
	moduleBody []byte
	cssBody    []byte
}

// New creates an App serving cfg
func New(id string, cfg config.ExperimentConfig, selector string) (*App, error) {
	jsonBody, err := cfg.ToJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to render config for app %s: %w", id, err)
	}

	return &App{
		id:         id,
		jsonBody:   jsonBody,
		moduleBody: []byte(cfg.ToJSModule()),
		cssBody:    []byte(cfg.ToCSS(selector)),
	}, nil
}

// String returns the unique identifier of the application
func (a *App) String() string {
	return a.id
}

// HandleJSON serves the configuration as a JSON object
func (a *App) HandleJSON(w http.ResponseWriter, r *http.Request) {
	a.serve(w, r, "application/json; charset=utf-8", a.jsonBody)
}

// HandleModule serves the configuration as an ES module with a default export
func (a *App) HandleModule(w http.ResponseWriter, r *http.Request) {
	a.serve(w, r, "text/javascript; charset=utf-8", a.moduleBody)
}

// HandleCSS serves the typography settings as a stylesheet
func (a *App) HandleCSS(w http.ResponseWriter, r *http.Request) {
	a.serve(w, r, "text/css; charset=utf-8", a.cssBody)
}

// HandleHealth reports liveness
func (a *App) HandleHealth(w http.ResponseWriter, r *http.Request) {
	a.serve(w, r, "text/plain; charset=utf-8", []byte("ok"))
}

func (a *App) serve(w http.ResponseWriter, r *http.Request, contentType string, body []byte) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(body)
}

// Routes returns the app's routes, each wrapped in the given middlewares
func (a *App) Routes(middlewares ...httpserver.HandlerFunc) ([]httpserver.Route, error) {
	handlers := []struct {
		name    string
		path    string
		handler http.HandlerFunc
	}{
		{a.id + "-json", PathJSON, a.HandleJSON},
		{a.id + "-module", PathModule, a.HandleModule},
		{a.id + "-css", PathCSS, a.HandleCSS},
		{a.id + "-health", PathHealth, a.HandleHealth},
	}

	routes := make([]httpserver.Route, 0, len(handlers))
	for _, h := range handlers {
		route, err := httpserver.NewRouteFromHandlerFunc(h.name, h.path, h.handler, middlewares...)
		if err != nil {
			return nil, fmt.Errorf("failed to create route %s: %w", h.path, err)
		}
		routes = append(routes, *route)
	}
	return routes, nil
}
