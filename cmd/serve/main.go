package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/3-lines-studio/heimdall"
)

func main() {
	sitePath := flag.String("site", "site.toml", "path to the site config file")
	flag.Parse()

	app := heimdall.New(heimdall.WithSiteFile(*sitePath))

	router := chi.NewRouter()
	handler := app.Wrap(router)

	addr := app.Addr()
	log.Printf("Serving on http://localhost%s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal(err)
	}
}
