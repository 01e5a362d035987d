package http

import "html/template"

type pageData struct {
	Title   string
	Version string
	SVG     template.HTML
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>{{.Title}} · proofview</title>
    <style>
        body { font-family: sans-serif; display: flex; flex-direction: column; align-items: center; }
        #stage svg { max-width: 95vw; height: auto; }
        .region { user-select: none; }
        footer { color: #888; font-size: 12px; }
    </style>
</head>
<body>
<div id="stage">{{.SVG}}</div>
<footer>← / → to navigate · proofview {{.Version}}</footer>
<script>
    const stage = document.getElementById('stage');
    const post = (path, body) => fetch(path, {
        method: 'POST',
        headers: {'Content-Type': 'application/json'},
        body: body ? JSON.stringify(body) : undefined,
    });

    stage.addEventListener('click', (ev) => {
        const svg = stage.querySelector('svg');
        if (!svg) return;
        const rect = svg.getBoundingClientRect();
        const box = svg.viewBox.baseVal;
        post('/click', {
            x: (ev.clientX - rect.left) * box.width / rect.width,
            y: (ev.clientY - rect.top) * box.height / rect.height,
        });
    });

    document.addEventListener('keydown', (ev) => {
        if (ev.key === 'ArrowRight' || ev.key === 'n') post('/next');
        if (ev.key === 'ArrowLeft' || ev.key === 'p') post('/previous');
    });

    const events = new EventSource('/events');
    events.onmessage = (ev) => {
        const frame = JSON.parse(ev.data);
        stage.innerHTML = frame.svg;
    };
</script>
</body>
</html>
`))
