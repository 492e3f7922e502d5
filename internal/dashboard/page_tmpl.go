// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package dashboard

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
:root {
  --bg: #fff; --fg: #1a1a2e; --card-bg: #fff; --border: #dee2e6;
  --muted: #6c757d; --grid: #e5ecf6; --error: #dc3545;
}
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: #f4f6f9; color: var(--fg); line-height: 1.5; }
header { padding: 1rem 1.5rem; color: #fff; margin-bottom: 1rem; }
header h1 { font-size: 1.5rem; }
main { max-width: 1400px; margin: 0 auto; padding: 0 1rem 2rem; }
.row { display: grid; grid-auto-columns: 1fr; grid-auto-flow: column; gap: 1rem; margin-bottom: 1rem; }
@media (max-width: 768px) { .row { grid-auto-flow: row; } }
.card { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: 1rem; box-shadow: 0 1px 3px rgba(0,0,0,.08); }
.controls { display: flex; flex-wrap: wrap; gap: 1rem; margin-bottom: .75rem; align-items: center; font-size: .875rem; }
.controls select { padding: .375rem .5rem; border: 1px solid var(--border); border-radius: 4px; min-width: 200px; }
.slider { display: flex; flex-direction: column; width: 100%; }
.slider input[type=range] { width: 100%; }
.slider .marks { display: flex; justify-content: space-between; color: var(--muted); font-size: .75rem; }
.chart svg { display: block; }
.chart .empty { fill: var(--muted); }
.error { color: var(--error); font-size: .8125rem; white-space: pre-wrap; }
.hidden { display: none; }
</style>
</head>
<body>
<header style="background: {{.HeaderColor}}">
<h1>{{.Title}}</h1>
</header>
<main>
{{range .Rows}}
<div class="row">
{{range .}}
<section class="card" id="card-{{.ID}}">
{{if .Dropdowns}}
<div class="controls">
{{range .Dropdowns}}{{$v := .Value}}
<label>{{.Label}}
<select id="{{.ID}}" data-control="{{.ID}}"{{if $.Static}} disabled{{end}}>
{{range .Options}}<option value="{{.Value}}"{{if eq .Value $v}} selected{{end}}>{{.Label}}</option>
{{end}}</select>
</label>
{{end}}
</div>
{{end}}
<div class="chart" id="{{.ID}}"></div>
{{with .Slider}}
<div class="controls">
<div class="slider" data-control="{{.ID}}" data-kind="range">
<input type="range" id="{{.ID}}-lo" min="{{.Min}}" max="{{.Max}}" step="{{.Step}}" value="{{index .Value 0}}"{{if $.Static}} disabled{{end}}>
<input type="range" id="{{.ID}}-hi" min="{{.Min}}" max="{{.Max}}" step="{{.Step}}" value="{{index .Value 1}}"{{if $.Static}} disabled{{end}}>
<div class="marks">{{range .Marks}}<span>{{.}}</span>{{end}}</div>
<output id="{{.ID}}-out">{{index .Value 0}} - {{index .Value 1}}</output>
</div>
</div>
{{end}}
<div class="error hidden" id="{{.ID}}-error"></div>
</section>
{{end}}
</div>
{{end}}
</main>

<script>
var figures = {{json .Figures}};
var graph = {{json .Graph}};
var staticPage = {{.Static}};
var debug = {{.Debug}};

var W = 700, H = 420, M = {l: 70, r: 130, t: 50, b: 55};
var palette = ["#636efa","#EF553B","#00cc96","#ab63fa","#FFA15A","#19d3f3","#FF6692","#B6E880","#FF97FF","#FECB52"];

function svgEl(tag, attrs) {
  var el = document.createElementNS("http://www.w3.org/2000/svg", tag);
  for (var k in attrs) el.setAttribute(k, attrs[k]);
  return el;
}

function label(svg, x, y, s, attrs) {
  var a = {x: x, y: y, fill: "currentColor", "font-size": "11"};
  for (var k in attrs) a[k] = attrs[k];
  var t = svgEl("text", a);
  t.textContent = s;
  svg.appendChild(t);
  return t;
}

function tip(el, s) {
  var t = svgEl("title", {});
  t.textContent = s;
  el.appendChild(t);
  return el;
}

function fmt(v) {
  if (Math.abs(v) >= 100) return Math.round(v).toString();
  return (Math.round(v * 100) / 100).toString();
}

function legend(svg, entries) {
  entries.forEach(function(e, i) {
    var y = M.t + i * 18;
    svg.appendChild(svgEl("rect", {x: W - M.r + 12, y: y - 9, width: 10, height: 10, fill: e.color, rx: 2}));
    label(svg, W - M.r + 27, y, e.name);
  });
}

function linear(d0, d1, r0, r1) {
  if (d1 === d0) { d0 -= 1; d1 += 1; }
  return function(v) { return r0 + (v - d0) / (d1 - d0) * (r1 - r0); };
}

function ticks(lo, hi, n) {
  var out = [];
  for (var i = 0; i <= n; i++) out.push(lo + (hi - lo) * i / n);
  return out;
}

function axes(svg, h, xs, ys, layout) {
  var x0 = M.l, x1 = W - M.r, y0 = h - M.b, y1 = M.t;
  xs.ticks.forEach(function(v) {
    var x = xs.scale(v);
    svg.appendChild(svgEl("line", {x1: x, x2: x, y1: y1, y2: y0, stroke: "var(--grid)"}));
    label(svg, x, y0 + 15, xs.label ? xs.label(v) : fmt(v), {"text-anchor": "middle"});
  });
  ys.ticks.forEach(function(v) {
    var y = ys.scale(v);
    svg.appendChild(svgEl("line", {x1: x0, x2: x1, y1: y, y2: y, stroke: "var(--grid)"}));
    label(svg, x0 - 6, y + 4, ys.label ? ys.label(v) : fmt(v), {"text-anchor": "end"});
  });
  svg.appendChild(svgEl("line", {x1: x0, x2: x1, y1: y0, y2: y0, stroke: "currentColor"}));
  svg.appendChild(svgEl("line", {x1: x0, x2: x0, y1: y1, y2: y0, stroke: "currentColor"}));
  if (layout.xaxis && layout.xaxis.title) label(svg, (x0 + x1) / 2, h - 15, layout.xaxis.title, {"text-anchor": "middle", "font-size": "12"});
  if (layout.yaxis && layout.yaxis.title) {
    var t = label(svg, 0, 0, layout.yaxis.title, {"text-anchor": "middle", "font-size": "12"});
    t.setAttribute("transform", "translate(16," + ((y0 + y1) / 2) + ") rotate(-90)");
  }
}

function renderBars(svg, tr, layout, h) {
  var labels = tr.labels || [], vals = tr.values || [];
  var horiz = tr.orientation === "h";
  var max = Math.max.apply(null, vals.concat([0])) || 1;
  var color = tr.color || palette[0];
  var n = labels.length, band;
  if (horiz) {
    var xs = {scale: linear(0, max, M.l + 60, W - M.r), ticks: ticks(0, max, 4)};
    band = (h - M.b - M.t) / n;
    axes(svg, h, xs, {scale: function(v) { return v; }, ticks: []}, layout);
    labels.forEach(function(l, i) {
      var y = M.t + i * band, bh = band * (tr.width || 0.8);
      svg.appendChild(tip(svgEl("rect", {x: xs.scale(0), y: y + (band - bh) / 2, width: xs.scale(vals[i]) - xs.scale(0), height: bh, fill: color}), l + ": " + fmt(vals[i])));
      label(svg, xs.scale(0) - 4, y + band / 2 + 4, l, {"text-anchor": "end"});
    });
  } else {
    var ys = {scale: linear(0, max, h - M.b, M.t), ticks: ticks(0, max, 4)};
    band = (W - M.r - M.l) / n;
    axes(svg, h, {scale: function(v) { return v; }, ticks: []}, ys, layout);
    labels.forEach(function(l, i) {
      var x = M.l + i * band, bw = band * (tr.width || 0.8);
      svg.appendChild(tip(svgEl("rect", {x: x + (band - bw) / 2, y: ys.scale(vals[i]), width: bw, height: ys.scale(0) - ys.scale(vals[i]), fill: color}), l + ": " + fmt(vals[i])));
      label(svg, x + band / 2, h - M.b + 15, l, {"text-anchor": "middle"});
    });
  }
}

function renderScatter(svg, traces, layout, h) {
  var logx = layout.xaxis && layout.xaxis.log;
  var fx = logx ? function(v) { return Math.log10(v); } : function(v) { return v; };
  var xsAll = [], ysAll = [], smax = 0;
  traces.forEach(function(tr) {
    (tr.x || []).forEach(function(v) { if (!logx || v > 0) xsAll.push(fx(v)); });
    (tr.y || []).forEach(function(v) { ysAll.push(v); });
    (tr.sizes || []).forEach(function(v) { smax = Math.max(smax, v); });
  });
  var xlo = Math.min.apply(null, xsAll), xhi = Math.max.apply(null, xsAll);
  var ylo = Math.min.apply(null, ysAll), yhi = Math.max.apply(null, ysAll);
  var xs = {scale: linear(xlo, xhi, M.l + 10, W - M.r - 10), ticks: ticks(xlo, xhi, 4)};
  if (logx) xs.label = function(v) { return fmt(Math.pow(10, v)); };
  var ys = {scale: linear(ylo, yhi, h - M.b - 10, M.t + 10), ticks: ticks(ylo, yhi, 4)};
  axes(svg, h, xs, ys, layout);
  var entries = [];
  traces.forEach(function(tr, ti) {
    var color = tr.color || palette[ti % palette.length];
    entries.push({name: tr.name, color: color});
    (tr.x || []).forEach(function(x, i) {
      if (logx && x <= 0) return;
      var r = 4;
      if (tr.sizes && smax > 0) r = Math.max(1, (tr.sizemax || 20) / 2 * Math.sqrt(tr.sizes[i] / smax));
      var c = svgEl("circle", {cx: xs.scale(fx(x)), cy: ys.scale(tr.y[i]), r: r, fill: color, "fill-opacity": 0.75});
      svg.appendChild(tip(c, tr.name + " (" + fmt(x) + ", " + fmt(tr.y[i]) + ")"));
    });
  });
  legend(svg, entries);
}

function renderPies(svg, traces, h) {
  var seen = {}, entries = [];
  traces.forEach(function(tr) {
    var d = tr.domain ? tr.domain.x : [0, 1];
    var span = (W - M.r) * (d[1] - d[0]);
    var cx = (W - M.r) * (d[0] + d[1]) / 2, cy = (h + M.t) / 2;
    var r = Math.max(10, Math.min(span / 2 - 8, (h - M.t - 40) / 2));
    var vals = tr.values || [];
    var total = vals.reduce(function(a, b) { return a + b; }, 0);
    if (tr.title) label(svg, cx, cy + r + 18, tr.title, {"text-anchor": "middle", "font-size": "12"});
    if (!total) {
      svg.appendChild(svgEl("circle", {cx: cx, cy: cy, r: r, fill: "none", stroke: "var(--border)"}));
      return;
    }
    var angle = -Math.PI / 2;
    vals.forEach(function(v, j) {
      var color = (tr.colors && tr.colors[j]) || palette[j % palette.length];
      var name = tr.labels[j];
      if (!seen[name]) { seen[name] = true; entries.push({name: name, color: color}); }
      if (!v) return;
      var slice = v / total * Math.PI * 2;
      var pct = fmt(v / total * 100) + "%";
      var el;
      if (slice >= Math.PI * 2 - 1e-9) {
        el = svgEl("circle", {cx: cx, cy: cy, r: r, fill: color});
      } else {
        var x1 = cx + r * Math.cos(angle), y1 = cy + r * Math.sin(angle);
        angle += slice;
        var x2 = cx + r * Math.cos(angle), y2 = cy + r * Math.sin(angle);
        var large = slice > Math.PI ? 1 : 0;
        el = svgEl("path", {d: "M" + cx + "," + cy + " L" + x1 + "," + y1 + " A" + r + "," + r + " 0 " + large + ",1 " + x2 + "," + y2 + " Z", fill: color});
      }
      svg.appendChild(tip(el, name + ": " + v + " (" + pct + ")" + (tr.name ? " " + tr.name : "")));
    });
    if (tr.hole) svg.appendChild(svgEl("circle", {cx: cx, cy: cy, r: r * tr.hole, fill: "var(--card-bg)"}));
  });
  legend(svg, entries);
}

function renderFigure(id, fig) {
  var c = document.getElementById(id); if (!c) return;
  while (c.firstChild) c.removeChild(c.firstChild);
  var layout = fig.layout || {};
  var h = layout.height || H;
  var svg = svgEl("svg", {width: "100%", viewBox: "0 0 " + W + " " + h});
  label(svg, (W - M.r) * (layout.title_x || 0.5), 24, layout.title || "", {"text-anchor": "middle", "font-size": "15"});
  var traces = (fig.data || []).filter(function(tr) { return (tr.values && tr.values.length) || (tr.x && tr.x.length) || tr.type === "pie"; });
  if (!traces.length) {
    label(svg, W / 2, h / 2, "No data", {"text-anchor": "middle", "class": "empty"});
  } else if (traces[0].type === "pie") {
    renderPies(svg, traces, h);
  } else if (traces[0].type === "bar") {
    renderBars(svg, traces[0], layout, h);
  } else {
    renderScatter(svg, traces, layout, h);
  }
  c.appendChild(svg);
}

function controlValue(id) {
  var el = document.querySelector("[data-control='" + id + "']");
  if (!el) return null;
  if (el.dataset.kind !== "range") return el.value;
  var lo = parseFloat(document.getElementById(id + "-lo").value);
  var hi = parseFloat(document.getElementById(id + "-hi").value);
  if (lo > hi) { var t = lo; lo = hi; hi = t; }
  document.getElementById(id + "-out").textContent = lo + " - " + hi;
  return [lo, hi];
}

function showError(output, msg) {
  var el = document.getElementById(output + "-error");
  if (!el) return;
  el.textContent = msg || "";
  el.classList.toggle("hidden", !(debug && msg));
}

function update(dep) {
  var inputs = {};
  dep.inputs.forEach(function(id) { inputs[id] = controlValue(id); });
  fetch("/_dash-update", {
    method: "POST",
    headers: {"Content-Type": "application/json"},
    body: JSON.stringify({output: dep.output, inputs: inputs})
  }).then(function(resp) {
    return resp.json().then(function(body) {
      if (!resp.ok) throw new Error(body.detail || body.error || resp.statusText);
      return body;
    });
  }).then(function(fig) {
    figures[dep.output] = fig;
    renderFigure(dep.output, fig);
    showError(dep.output, "");
  }).catch(function(err) {
    showError(dep.output, err.message);
  });
}

(function() {
  for (var id in figures) renderFigure(id, figures[id]);
  if (staticPage) return;
  graph.forEach(function(dep) {
    dep.inputs.forEach(function(id) {
      var el = document.querySelector("[data-control='" + id + "']");
      if (el) el.addEventListener("change", function() { update(dep); });
    });
  });
})();
</script>
</body>
</html>`
