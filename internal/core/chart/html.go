package chart

import (
	"bytes"
	"html/template"
)

// Embed script versions pinned to the Vega-Lite v5 schema
const (
	vegaJS      = "https://cdn.jsdelivr.net/npm/vega@5"
	vegaLiteJS  = "https://cdn.jsdelivr.net/npm/vega-lite@5"
	vegaEmbedJS = "https://cdn.jsdelivr.net/npm/vega-embed@6"
)

const tmplStandalone = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <style>#vis.vega-embed{width:100%;display:flex}#vis.vega-embed details,#vis.vega-embed details summary{position:relative}</style>
  <script src="{{.Vega}}"></script>
  <script src="{{.VegaLite}}"></script>
  <script src="{{.VegaEmbed}}"></script>
</head>
<body>
  <div id="vis"></div>
  <script>
    vegaEmbed("#vis", {{.Spec}}, {mode: "vega-lite"}).catch(function (err) {
      document.getElementById("vis").innerText = String(err);
    });
  </script>
</body>
</html>
`

var standalone = template.Must(template.New("chart").Parse(tmplStandalone))

// HTML renders spec as a standalone page that draws it with vega-embed
func HTML(spec Spec) ([]byte, error) {
	var buf bytes.Buffer
	err := standalone.Execute(&buf, struct {
		Title                     string
		Vega, VegaLite, VegaEmbed string
		Spec                      Spec
	}{
		Title:     spec.Title,
		Vega:      vegaJS,
		VegaLite:  vegaLiteJS,
		VegaEmbed: vegaEmbedJS,
		Spec:      spec,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
