package view

import (
	"fmt"
	"html/template"
	"io"
)

var historyTemplate = template.Must(template.New("history").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Praxis history</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 720px; margin: 2rem auto; }
.item { border: 1px solid #ddd; border-radius: 8px; padding: 12px; margin-bottom: 12px; }
.meta { display: flex; gap: 8px; align-items: center; color: #666; font-size: 0.9rem; }
.badge { background: #eee; border-radius: 999px; padding: 2px 8px; }
.content { white-space: pre-wrap; margin-top: 8px; }
.muted { color: #888; }
</style>
</head>
<body>
<div id="history">
{{- range . }}
{{- if .Empty }}
<div class="item"><div class="content muted">{{ .Body }}</div></div>
{{- else }}
<div class="item" data-id="{{ .ID }}">
<div class="meta"><span class="badge">{{ .Badge }}</span><span>{{ .When }}</span></div>
<div class="content">{{ .Body }}</div>
</div>
{{- end }}
{{- end }}
</div>
</body>
</html>
`))

// RenderHTML writes cards as a standalone HTML page. All card text is
// escaped.
func RenderHTML(w io.Writer, cards []Card) error {
	if err := historyTemplate.Execute(w, cards); err != nil {
		return fmt.Errorf("failed to render history: %w", err)
	}
	return nil
}
