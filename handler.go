package katex

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"mime"
	"net/http"
	"strings"
	"sync"

	"github.com/dpotapov/go-katex/parse"
	"github.com/gorilla/websocket"
	"golang.org/x/net/html"
)

// wsUpgrader is a Gorilla WebSocket instance, used to respond HTTP requests with WebSocket.
var wsUpgrader = websocket.Upgrader{}

const (
	assetsPrefix      = "/assets"
	stylesheetName    = "katex.css"
	previewScriptName = "preview.js"
)

// RenderRequest is the body of a render request, as JSON or as a
// websocket message.
type RenderRequest struct {
	TeX      string         `json:"tex"`
	Settings map[string]any `json:"settings"`
}

// Handler serves a live preview of rendered math:
//
//   - GET / serves a page with an editor. The page connects back to / over a
//     websocket and sends a RenderRequest on every edit; each request is
//     answered with the rendered markup.
//   - GET or POST /render renders one expression given as JSON, form or
//     query fields ("tex", "settings.<name>").
//   - GET /assets/... serves the stylesheet and the page script.
//
// Parse errors are rendered as error placeholders unless the request sets
// throwOnError, in which case /render answers 400 with the message.
type Handler struct {
	// Settings are the defaults applied before the settings of each request.
	Settings map[string]any

	// OnError is a callback that is called when an error occurs while serving a request.
	OnError func(*http.Request, error)

	// Logger configures logging for internal events.
	Logger *slog.Logger

	// init is used to initialize the handler only once.
	init sync.Once

	// logger is a private logger instance that is used to log internal events.
	logger *slog.Logger

	assets *assetCollector
}

// ServeHTTP implements the http.Handler interface.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.init.Do(func() {
		h.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		if h.Logger != nil {
			h.logger = h.Logger
		}

		h.assets = newAssetCollector(assetsPrefix)
		if err := h.assets.AddAsset(stylesheetName, []byte(Stylesheet())); err != nil {
			h.logger.Error("Add stylesheet", "error", err)
		}
		if err := h.assets.AddAsset(previewScriptName, []byte(previewScript)); err != nil {
			h.logger.Error("Add preview script", "error", err)
		}
	})

	if err := h.handleRequest(w, r); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		h.logger.Error("Serve HTTP request", "url", r.URL.Redacted(), "error", err)

		if h.OnError != nil {
			h.OnError(r, err)
		}
	}
}

func (h *Handler) handleRequest(w http.ResponseWriter, r *http.Request) error {
	if strings.HasPrefix(r.URL.Path, assetsPrefix+"/") {
		handled, err := h.assets.ServeAsset(w, r)
		if err != nil {
			return err
		}
		if !handled {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		}
		return nil
	}

	switch r.URL.Path {
	case "/":
		if websocket.IsWebSocketUpgrade(r) {
			return h.serveLive(w, r)
		}
		return h.servePage(w, r)
	case "/render":
		return h.serveRender(w, r)
	}

	http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	return nil
}

// settings merges the handler defaults with the request settings. Parse
// errors become placeholders unless throwOnError is set explicitly.
func (h *Handler) settings(req *RenderRequest) (*parse.Settings, error) {
	m := map[string]any{"throwOnError": false}
	maps.Copy(m, h.Settings)
	maps.Copy(m, req.Settings)
	s, err := parse.SettingsFromMap(m)
	if err != nil {
		return nil, err
	}
	s.Logger = h.logger
	return s, nil
}

// render renders a request to w. Errors in the request itself (settings or
// TeX) are returned as a *requestError.
func (h *Handler) render(w io.Writer, req *RenderRequest) error {
	settings, err := h.settings(req)
	if err != nil {
		return &requestError{err: err}
	}
	node, err := RenderToDomTree(req.TeX, settings)
	if err != nil {
		var pe *parse.ParseError
		if errors.As(err, &pe) {
			return &requestError{err: err}
		}
		return fmt.Errorf("render %q: %w", req.TeX, err)
	}
	if err := html.Render(w, node.ToNode()); err != nil {
		return fmt.Errorf("render HTML: %w", err)
	}
	return nil
}

type requestError struct{ err error }

func (e *requestError) Error() string { return e.err.Error() }
func (e *requestError) Unwrap() error { return e.err }

func (h *Handler) serveRender(w http.ResponseWriter, r *http.Request) error {
	req, err := h.decodeRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}

	var sb strings.Builder
	if err := h.render(&sb, req); err != nil {
		var re *requestError
		if errors.As(err, &re) {
			http.Error(w, re.Error(), http.StatusBadRequest)
			return nil
		}
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err = io.WriteString(w, sb.String())
	return err
}

// decodeRequest reads a RenderRequest from a JSON body, a form body or the
// query string.
func (h *Handler) decodeRequest(r *http.Request) (*RenderRequest, error) {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if r.Method == http.MethodPost && ct == "application/json" {
		var req RenderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, fmt.Errorf("decode JSON body: %w", err)
		}
		return &req, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("parse form: %w", err)
	}
	return &RenderRequest{
		TeX:      r.Form.Get("tex"),
		Settings: DecodeSettingsForm(r.Form, h.logger),
	}, nil
}

// serveLive answers each websocket message with the rendered markup. When
// messages arrive faster than they render, only the latest pending one is
// rendered.
func (h *Handler) serveLive(w http.ResponseWriter, r *http.Request) error {
	ws, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	rc := make(chan *RenderRequest, 1) // latest pending request
	done := make(chan error, 1)        // completion of the reading loop

	go func() {
		for {
			var req RenderRequest
			if err := ws.ReadJSON(&req); err != nil {
				if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					err = nil
				} else {
					err = fmt.Errorf("read websocket message: %w", err)
				}
				done <- err
				return
			}

			// Replace a request that has not been picked up yet.
			select {
			case <-rc:
			default:
			}
			rc <- &req
		}
	}()

	for {
		select {
		case req := <-rc:
			w, err := ws.NextWriter(websocket.TextMessage)
			if err != nil {
				return fmt.Errorf("get websocket writer: %w", err)
			}

			if err := h.render(w, req); err != nil {
				var re *requestError
				if !errors.As(err, &re) {
					return err
				}
				h.logger.Debug("Render request", "tex", req.TeX, "error", err)
				if _, err := io.WriteString(w, `<pre class="katex-error">`+html.EscapeString(re.Error())+`</pre>`); err != nil {
					return fmt.Errorf("write error message: %w", err)
				}
			}

			if err := w.Close(); err != nil {
				return fmt.Errorf("close websocket writer: %w", err)
			}
		case err := <-done:
			return err
		}
	}
}

func (h *Handler) servePage(w http.ResponseWriter, r *http.Request) error {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return nil
	}
	page := strings.NewReplacer(
		"{{stylesheet}}", html.EscapeString(h.assets.AssetPath(stylesheetName)),
		"{{script}}", html.EscapeString(h.assets.AssetPath(previewScriptName)),
	).Replace(previewPage)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := io.WriteString(w, page)
	return err
}

const previewPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>KaTeX preview</title>
<link rel="stylesheet" href="{{stylesheet}}">
</head>
<body>
<textarea id="tex" rows="6" cols="80">\sum_{i=1}^n i = \frac{n(n+1)}{2}</textarea>
<label><input id="display" type="checkbox" checked> display mode</label>
<div id="output"></div>
<script src="{{script}}"></script>
</body>
</html>
`

const previewScript = `(function () {
  var tex = document.getElementById("tex");
  var display = document.getElementById("display");
  var output = document.getElementById("output");
  var proto = location.protocol === "https:" ? "wss:" : "ws:";
  var ws = new WebSocket(proto + "//" + location.host + location.pathname);
  function send() {
    ws.send(JSON.stringify({tex: tex.value, settings: {displayMode: display.checked}}));
  }
  ws.onopen = send;
  ws.onmessage = function (e) { output.innerHTML = e.data; };
  tex.addEventListener("input", send);
  display.addEventListener("change", send);
})();`
