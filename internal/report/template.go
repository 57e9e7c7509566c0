package report

// reportTemplate is the HTML template for the sweep report.
// It is embedded as a Go constant — no external file dependencies.
const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<style>
  :root {
    --bg: #ffffff;
    --text: #1a1a2e;
    --muted: #6b7280;
    --border: #e5e7eb;
    --accent: #2563eb;
    --section-bg: #f8fafc;
  }
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
    color: var(--text);
    background: var(--bg);
    line-height: 1.6;
    max-width: 980px;
    margin: 0 auto;
    padding: 20px;
  }
  h1, h2 { font-weight: 600; }
  h1 { font-size: 1.5rem; margin-bottom: 4px; color: var(--accent); }
  h2 { font-size: 1.2rem; margin: 24px 0 12px; padding-bottom: 6px; border-bottom: 2px solid var(--accent); }
  .muted { color: var(--muted); font-size: 0.85rem; }

  .header {
    display: flex;
    justify-content: space-between;
    align-items: flex-start;
    border-bottom: 3px solid var(--accent);
    padding-bottom: 12px;
    margin-bottom: 16px;
  }
  .header-right { text-align: right; }

  .params {
    display: grid;
    grid-template-columns: repeat(auto-fill, minmax(220px, 1fr));
    gap: 8px;
    background: var(--section-bg);
    padding: 12px;
    border-radius: 8px;
    margin-bottom: 16px;
  }
  .param .label { font-size: 0.75rem; color: var(--muted); text-transform: uppercase; }
  .param .value { font-size: 0.95rem; font-weight: 600; }

  table.sweep {
    width: 100%;
    border-collapse: collapse;
    font-size: 0.8rem;
  }
  table.sweep th, table.sweep td {
    padding: 6px 8px;
    text-align: right;
    border-bottom: 1px solid var(--border);
    white-space: nowrap;
  }
  table.sweep th {
    background: var(--section-bg);
    text-transform: uppercase;
    font-size: 0.7rem;
    color: var(--muted);
  }
  table.sweep tr:hover td { background: var(--section-bg); }

  .chart { margin: 16px 0; text-align: center; }
</style>
</head>
<body>
  <div class="header">
    <div class="header-left">
      <h1>{{.Title}}</h1>
      <p class="muted">Monte Carlo price sweep</p>
    </div>
    <div class="header-right">
      <p class="muted">{{.Author}}</p>
      <p class="muted">{{.GeneratedAt}}</p>
    </div>
  </div>

  <h2>Assumptions</h2>
  <div class="params">
    {{range .Params}}
    <div class="param">
      <div class="label">{{.Label}}</div>
      <div class="value">{{.Value}}</div>
    </div>
    {{end}}
  </div>

  <h2>Affordability</h2>
  <div class="chart">{{.FavorableChart}}</div>

  <h2>Return vs. Target</h2>
  <div class="chart">{{.AboveTargetChart}}</div>

  <h2>Sweep Table</h2>
  <table class="sweep">
    <thead>
      <tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
    </thead>
    <tbody>
      {{range .Rows}}
      <tr>{{range .Cells}}<td>{{.}}</td>{{end}}</tr>
      {{end}}
    </tbody>
  </table>
</body>
</html>`
