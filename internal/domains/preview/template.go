package preview

import (
	"html/template"
	"io"
)

// PageData feeds the preview template. All text fields pass through
// html/template escaping.
type PageData struct {
	SiteName      string
	TwitterHandle string
	Title         string
	Description   string
	ImageURL      string
	CanonicalURL  string
	PublishedAt   string
	Author        string
}

// previewTemplate renders the crawler-facing share page: Open Graph and
// Twitter card metadata plus a meta refresh so a human who lands here
// still ends up on the real page.
var previewTemplate = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>{{.Title}} | {{.SiteName}}</title>
<meta name="description" content="{{.Description}}">
<link rel="canonical" href="{{.CanonicalURL}}">
<meta property="og:type" content="article">
<meta property="og:site_name" content="{{.SiteName}}">
<meta property="og:title" content="{{.Title}}">
<meta property="og:description" content="{{.Description}}">
<meta property="og:url" content="{{.CanonicalURL}}">
<meta property="og:image" content="{{.ImageURL}}">
<meta property="og:image:width" content="1200">
<meta property="og:image:height" content="630">
{{if .PublishedAt}}<meta property="article:published_time" content="{{.PublishedAt}}">
{{end}}{{if .Author}}<meta property="article:author" content="{{.Author}}">
{{end}}<meta name="twitter:card" content="summary_large_image">
<meta name="twitter:site" content="{{.TwitterHandle}}">
<meta name="twitter:title" content="{{.Title}}">
<meta name="twitter:description" content="{{.Description}}">
<meta name="twitter:image" content="{{.ImageURL}}">
<meta http-equiv="refresh" content="0;url={{.CanonicalURL}}">
</head>
<body>
<p>Redirecionando para <a href="{{.CanonicalURL}}">{{.Title}}</a>…</p>
</body>
</html>
`))

var notFoundTemplate = template.Must(template.New("notfound").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>Conteúdo não encontrado | {{.SiteName}}</title>
</head>
<body>
<p>Conteúdo não encontrado.</p>
</body>
</html>
`))

// RenderPreview writes the crawler-facing share page.
func RenderPreview(w io.Writer, data PageData) error {
	return previewTemplate.Execute(w, data)
}

// RenderNotFound writes the missing-content page.
func RenderNotFound(w io.Writer, siteName string) error {
	return notFoundTemplate.Execute(w, PageData{SiteName: siteName})
}
