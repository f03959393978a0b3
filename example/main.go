package main

import (
	"bytes"
	"log/slog"
	"net/http"
	"os"

	"github.com/dpotapov/go-katex"
	"github.com/dpotapov/go-katex/markdown"
	"github.com/dpotapov/go-katex/parse"
	"github.com/yuin/goldmark"
)

func LoggerMiddleware(next http.Handler, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Info("HTTP request", "method", r.Method, "url", r.URL)
		next.ServeHTTP(w, r)
	})
}

// notesHandler renders a markdown file with math on every request, so edits
// show up on reload.
type notesHandler struct {
	path   string
	md     goldmark.Markdown
	logger *slog.Logger
}

func (h *notesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	source, err := os.ReadFile(h.path)
	if err != nil {
		h.logger.Error("Read notes", "path", h.path, "error", err)
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	var buf bytes.Buffer
	buf.WriteString(`<!DOCTYPE html><html><head><meta charset="utf-8">` +
		`<link rel="stylesheet" href="/assets/katex.css"></head><body>`)
	if err := h.md.Convert(source, &buf); err != nil {
		h.logger.Error("Convert notes", "path", h.path, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	buf.WriteString(`</body></html>`)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	macros := map[string]any{
		`\RR`: `\mathbb{R}`,
		`\NN`: `\mathbb{N}`,
	}

	kh := &katex.Handler{
		Settings: map[string]any{"macros": macros},
		Logger:   logger,
	}

	math := markdown.New(
		parse.WithMacro(`\RR`, `\mathbb{R}`),
		parse.WithMacro(`\NN`, `\mathbb{N}`),
	)
	math.Logger = logger

	mux := http.NewServeMux()
	mux.Handle("/notes", &notesHandler{
		path:   "./example/notes.md",
		md:     goldmark.New(goldmark.WithExtensions(math)),
		logger: logger,
	})
	mux.Handle("/", kh)

	logger.Info("Starting HTTP server", "address", "http://localhost:8080")

	err := http.ListenAndServe(":8080", LoggerMiddleware(mux, logger))

	logger.Error("HTTP server error", "error", err)
}
