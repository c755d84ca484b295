// Package heimdall renders a static marketing page for a small client
// application. The page is composed from a catalog of view fragments
// styled through declarative property maps; design-token references in
// those maps are resolved to CSS var() form and backed by a palette
// emitted into the document head.
package heimdall

import (
	"bytes"
	"fmt"
	"net/http"
	"os"

	"github.com/3-lines-studio/heimdall/internal/config"
	"github.com/3-lines-studio/heimdall/internal/html"
	"github.com/3-lines-studio/heimdall/internal/theme"
	"github.com/3-lines-studio/heimdall/internal/view"
)

type mode int

const (
	modeDev mode = iota
	modeProd
)

func detectMode() mode {
	if os.Getenv("HEIMDALL_DEV") == "1" {
		return modeDev
	}
	return modeProd
}

// App owns the composed page and serves it over HTTP. In production mode
// the tree is built and serialized once at startup; in dev mode every
// request re-reads the site file and re-renders.
type App struct {
	site     config.Site
	sitePath string
	palette  theme.Palette
	isDev    bool

	page    []byte
	loadErr error
}

type Option func(*App)

// WithSite supplies site content directly, bypassing any config file.
func WithSite(site config.Site) Option {
	return func(a *App) {
		a.site = site
		a.sitePath = ""
	}
}

// WithSiteFile points the app at a TOML site file. A missing file leaves
// the defaults in place; a malformed one surfaces on the error page.
func WithSiteFile(path string) Option {
	return func(a *App) {
		a.sitePath = path
	}
}

// WithPalette swaps the design-token palette.
func WithPalette(p theme.Palette) Option {
	return func(a *App) {
		a.palette = p
	}
}

func New(opts ...Option) *App {
	app := &App{
		site:    config.Default(),
		palette: theme.Default(),
		isDev:   detectMode() == modeDev,
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.sitePath != "" {
		app.site, app.loadErr = config.Load(app.sitePath)
	}

	if !app.isDev && app.loadErr == nil {
		app.page, app.loadErr = app.renderPage()
	}

	return app
}

// Site returns the content the app renders from.
func (a *App) Site() config.Site {
	return a.site
}

// Addr returns the listen address from the site config.
func (a *App) Addr() string {
	return a.site.Addr
}

// renderPage composes the view tree and hands it to the HTML host exactly
// once, returning the full document.
func (a *App) renderPage() ([]byte, error) {
	return a.renderSite(a.site)
}

func (a *App) renderSite(site config.Site) ([]byte, error) {
	var body bytes.Buffer
	if err := html.Render(&body, view.LandingFrom(site.Content())); err != nil {
		return nil, fmt.Errorf("render landing page: %w", err)
	}

	doc := html.Shell(site.Brand, a.palette.CSSVariables(), body.String())
	return []byte(doc), nil
}

type router interface {
	http.Handler
	Handle(pattern string, handler http.Handler)
}

// Wrap registers the landing page on the given router and returns it.
func (a *App) Wrap(api router) http.Handler {
	if api == nil {
		panic("heimdall: nil router passed to Wrap; use app.Handler()")
	}
	api.Handle("/", a.pageHandler())
	return api
}

// Handler returns a ready-to-serve handler for the landing page.
func (a *App) Handler() http.Handler {
	return a.Wrap(http.NewServeMux())
}

func (a *App) pageHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/" {
			http.NotFound(w, req)
			return
		}

		if a.isDev {
			a.serveDev(w)
			return
		}

		if a.loadErr != nil {
			a.serveError(w, a.loadErr)
			return
		}
		serveHTML(w, a.page)
	})
}

func (a *App) serveDev(w http.ResponseWriter) {
	site := a.site
	if a.sitePath != "" {
		loaded, err := config.Load(a.sitePath)
		if err != nil {
			a.serveError(w, err)
			return
		}
		site = loaded
	}

	page, err := a.renderSite(site)
	if err != nil {
		a.serveError(w, err)
		return
	}
	serveHTML(w, page)
}

func serveHTML(w http.ResponseWriter, doc []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

func (a *App) serveError(w http.ResponseWriter, err error) {
	data := html.ErrorData{Message: err.Error(), IsDev: a.isDev}

	var buf bytes.Buffer
	if tmplErr := html.ErrorTemplate.Execute(&buf, data); tmplErr != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(buf.Bytes())
}
