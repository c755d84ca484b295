package main

import (
	"flag"
	"os"

	"github.com/3-lines-studio/heimdall"
	"github.com/3-lines-studio/heimdall/internal/cli"
)

func main() {
	sitePath := flag.String("site", "site.toml", "path to the site config file")
	outDir := flag.String("out", "dist", "directory to write the exported page into")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Parse()

	out := cli.NewOutput()
	if *noColor {
		out.DisableColors()
	}

	out.Stepf("Rendering landing page from %s", *sitePath)

	app := heimdall.New(heimdall.WithSiteFile(*sitePath))
	path, err := app.ExportStatic(*outDir)
	if err != nil {
		out.Errorf("export failed: %v", err)
		os.Exit(1)
	}

	out.Successf("Exported static page")
	out.File(path)
}
