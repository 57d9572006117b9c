package report

// pageTemplate is the HTML page around the chart. The #tooltip element
// exists before the script runs and is reused for every arc.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<style>
  body {
    font-family: sans-serif;
    margin: 0;
    padding: 16px;
  }
  #tooltip {
    position: absolute;
    opacity: 0;
    pointer-events: none;
    background: #ffffff;
    border: 1px solid #d1d5db;
    border-radius: 4px;
    padding: 6px 8px;
    font-size: 12px;
    line-height: 1.5;
    box-shadow: 0 1px 3px rgba(0, 0, 0, 0.15);
  }
  .label { font-size: 11px; }
  .arc { cursor: pointer; }
</style>
</head>
<body>
{{- if .Heading}}
<h1>{{.Heading}}</h1>
{{- end}}
<div id="tooltip"></div>
{{.SVG}}
{{- if .ScriptURL}}
<script src="{{.ScriptURL}}"></script>
{{- else}}
<script>{{.Script}}</script>
{{- end}}
</body>
</html>
`
