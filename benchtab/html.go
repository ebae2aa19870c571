// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"html/template"
	"io"

	"github.com/typofix/benchviz/benchreport"
)

// HTMLFile is the name of the HTML summary artifact.
const HTMLFile = "summary.html"

var htmlTemplate = template.Must(template.New("summary").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>typofix benchmark comparison</title>
<style>
.benchviz { border-collapse: collapse; }
.benchviz th, .benchviz td { padding: 0.2em 0.8em; border-bottom: 1px solid #ccc; }
.benchviz th { text-align: left; }
.benchviz td { text-align: right; font-variant-numeric: tabular-nums; }
.benchviz td.name { text-align: left; }
.meta { color: #666; }
</style>
</head>
<body>
<h1>typofix benchmark comparison</h1>
{{if or .Metadata.Date .Metadata.Iterations -}}
<p class='meta'>{{with .Metadata.Date}}Date: {{.}}{{end}}{{with .Metadata.Iterations}} Iterations: {{.}}{{end}}
{{end -}}
<table class='benchviz'>
<tr><th>metric<th>case<th>unit<th>Rust<th>Python<th>Python/Rust
{{range .Rows -}}
<tr><td class='name'>{{.Metric}}<td class='name'>{{.Case}}<td>{{.Unit}}<td>{{.Rust}}<td>{{.Python}}<td>{{.Ratio}}
{{end -}}
</table>
</body>
</html>
`))

type htmlData struct {
	Metadata benchreport.Metadata
	Rows     []Row
}

// FormatHTML writes a static HTML table of rep's summary rows to w.
func FormatHTML(w io.Writer, rep *benchreport.Report) error {
	return htmlTemplate.Execute(w, htmlData{rep.Metadata, Rows(rep)})
}
