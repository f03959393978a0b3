package katex

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-shiori/dom"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func TestHandler(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		url         string
		contentType string
		body        string
		wantStatus  int
		wantClass   string
		wantBody    string
	}{
		{
			name:       "query",
			method:     http.MethodGet,
			url:        "/render?tex=" + url.QueryEscape(`\frac{1}{2}`),
			wantStatus: http.StatusOK,
			wantClass:  "frac-line",
		},
		{
			name:        "json",
			method:      http.MethodPost,
			url:         "/render",
			contentType: "application/json",
			body:        `{"tex": "x^2", "settings": {"displayMode": true}}`,
			wantStatus:  http.StatusOK,
			wantClass:   "katex-display",
		},
		{
			name:        "form",
			method:      http.MethodPost,
			url:         "/render",
			contentType: "application/x-www-form-urlencoded",
			body:        "tex=" + url.QueryEscape(`\RR`) + "&" + url.QueryEscape(`settings.macros.\RR`) + "=" + url.QueryEscape(`\frac12`),
			wantStatus:  http.StatusOK,
			wantClass:   "mfrac",
		},
		{
			name:       "error placeholder",
			method:     http.MethodGet,
			url:        "/render?tex=" + url.QueryEscape(`\frac{a}`),
			wantStatus: http.StatusOK,
			wantClass:  "katex-error",
		},
		{
			name:       "throwOnError",
			method:     http.MethodGet,
			url:        "/render?settings.throwOnError=true&tex=" + url.QueryEscape(`a^b^c`),
			wantStatus: http.StatusBadRequest,
			wantBody:   "Double superscript",
		},
		{
			name:       "unknown setting",
			method:     http.MethodGet,
			url:        "/render?settings.fancy=1&tex=x",
			wantStatus: http.StatusBadRequest,
			wantBody:   `unknown setting "fancy"`,
		},
		{
			name:        "malformed json",
			method:      http.MethodPost,
			url:         "/render",
			contentType: "application/json",
			body:        `{"tex": `,
			wantStatus:  http.StatusBadRequest,
			wantBody:    "decode JSON body",
		},
		{
			name:       "page",
			method:     http.MethodGet,
			url:        "/",
			wantStatus: http.StatusOK,
			wantBody:   `<link rel="stylesheet" href="/assets/katex.`,
		},
		{
			name:       "stylesheet",
			method:     http.MethodGet,
			url:        "/assets/katex.css",
			wantStatus: http.StatusOK,
			wantBody:   ".katex .sizing.reset-size6.size7, .katex .fontsize-ensurer.reset-size6.size7 { font-size: 1.2em; }",
		},
		{
			name:       "missing asset",
			method:     http.MethodGet,
			url:        "/assets/missing.css",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "not found",
			method:     http.MethodGet,
			url:        "/index.html",
			wantStatus: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var handlerErr error
			h := &Handler{
				OnError: func(r *http.Request, err error) { handlerErr = err },
			}

			req := httptest.NewRequest(tt.method, tt.url, strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			require.NoError(t, handlerErr)
			require.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			if tt.wantBody != "" {
				require.Contains(t, rr.Body.String(), tt.wantBody)
			}
			if tt.wantClass != "" {
				doc, err := dom.FastParse(strings.NewReader(rr.Body.String()))
				require.NoError(t, err)
				require.NotEmpty(t, dom.GetElementsByClassName(doc, tt.wantClass), rr.Body.String())
			}
		})
	}
}

func TestHandler_Settings(t *testing.T) {
	h := &Handler{Settings: map[string]any{"output": "html"}}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/render?tex=x", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.NotContains(t, rr.Body.String(), "<math")

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/render?settings.output=htmlAndMathml&tex=x", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "<math")
}

func TestHandler_Live(t *testing.T) {
	srv := httptest.NewServer(&Handler{})
	defer srv.Close()

	ws, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/", nil)
	require.NoError(t, err)
	defer ws.Close()

	tests := []struct {
		name      string
		req       RenderRequest
		wantClass string
	}{
		{"fraction", RenderRequest{TeX: `\frac{a}{b}`}, "mfrac"},
		{"display", RenderRequest{TeX: `x`, Settings: map[string]any{"displayMode": true}}, "katex-display"},
		{"parse error", RenderRequest{TeX: `\frac{a}`}, "katex-error"},
		{"request error", RenderRequest{TeX: `x`, Settings: map[string]any{"output": "pdf"}}, "katex-error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, ws.WriteJSON(tt.req))

			_, msg, err := ws.ReadMessage()
			require.NoError(t, err)

			doc, err := dom.FastParse(strings.NewReader(string(msg)))
			require.NoError(t, err)
			require.NotEmpty(t, dom.GetElementsByClassName(doc, tt.wantClass), string(msg))
		})
	}
}
