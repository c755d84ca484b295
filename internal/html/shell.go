package html

import (
	"fmt"
	"html"
	"strings"
)

// Shell wraps a rendered body in a full HTML document: doctype, meta,
// title, and an inline stylesheet carrying the :root token block so
// var() references in inline styles resolve.
func Shell(title string, tokenCSS string, bodyHTML string) string {
	var head strings.Builder
	head.WriteString(`<meta charset="UTF-8" /><meta name="viewport" content="width=device-width, initial-scale=1.0" />`)
	if title != "" {
		fmt.Fprintf(&head, "<title>%s</title>", html.EscapeString(title))
	}
	fmt.Fprintf(&head, "<style>\n%s\nbody { margin: 0; font-family: system-ui, sans-serif; }\n</style>", tokenCSS)

	return fmt.Sprintf(`<!doctype html>
<html lang="en">
  <head>
    %s
  </head>
  <body>
%s  </body>
</html>
`, head.String(), bodyHTML)
}
