// ABOUTME: Renders the shared Markdown help text into a minimal HTML page with goldmark.
// ABOUTME: The page is rebuilt per request; the source is embedded so it never changes at runtime.
package web

import (
	"bytes"
	"html/template"
	"io"

	"github.com/yuin/goldmark"

	"github.com/2389-research/vabot/docs"
)

var pageTemplate = template.Must(template.New("help").Parse(`<!DOCTYPE html>
<html lang="ja">
<head>
<meta charset="utf-8">
<title>VA Bot</title>
</head>
<body>
{{.}}
</body>
</html>
`))

// markdownToHTML converts a markdown string to HTML using goldmark.
// goldmark drops raw HTML by default.
func markdownToHTML(input string) template.HTML {
	var buf bytes.Buffer
	md := goldmark.New()
	if err := md.Convert([]byte(input), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(input))
	}
	return template.HTML(buf.String())
}

func renderHelpPage(w io.Writer) error {
	return pageTemplate.Execute(w, markdownToHTML(docs.Help()))
}
