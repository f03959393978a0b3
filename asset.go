package katex

import (
	"fmt"
	"hash/fnv"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
)

// assetInfo holds one named asset and its content-derived version.
type assetInfo struct {
	content     strings.Builder
	versionHash uint64 // FNV-1a hash of the content
	servePath   string // e.g. "/assets/katex.0123456789abcdef.css"
}

// assetCollector serves the stylesheet and script of the preview page under
// versioned paths. Content blocks are deduplicated by hash, and the version
// of an asset changes whenever content is appended to it.
type assetCollector struct {
	mu sync.RWMutex

	// assets is keyed by logical name, e.g. "katex.css".
	assets map[string]*assetInfo
	// addedChunks holds the hashes of content blocks already added.
	addedChunks map[uint64]struct{}
	// servePrefix is the first path segment of served assets, e.g. "/assets".
	servePrefix string
	// servePathToName maps both the versioned and the plain path of an
	// asset to its logical name.
	servePathToName map[string]string
}

var contentTypes = map[string]string{
	".css": "text/css; charset=utf-8",
	".js":  "application/javascript; charset=utf-8",
}

func newAssetCollector(servePrefix string) *assetCollector {
	if !strings.HasPrefix(servePrefix, "/") {
		servePrefix = "/" + servePrefix
	}
	return &assetCollector{
		assets:          make(map[string]*assetInfo),
		addedChunks:     make(map[uint64]struct{}),
		servePrefix:     strings.TrimSuffix(servePrefix, "/"),
		servePathToName: make(map[string]string),
	}
}

func hash64(content string) uint64 {
	h := fnv.New64a()
	_, _ = io.WriteString(h, content)
	return h.Sum64()
}

// AddAsset appends content to the named asset, creating it if needed. The
// asset type is taken from the name's extension.
func (c *assetCollector) AddAsset(name string, content []byte) error {
	ext := filepath.Ext(name)
	if _, ok := contentTypes[ext]; !ok {
		return fmt.Errorf("unsupported asset type %q (asset: %s)", ext, name)
	}
	chunkHash := hash64(string(content))

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.addedChunks[chunkHash]; exists {
		return nil
	}
	c.addedChunks[chunkHash] = struct{}{}

	ai, ok := c.assets[name]
	if !ok {
		ai = &assetInfo{}
		c.assets[name] = ai
	}
	oldServePath := ai.servePath

	if ai.content.Len() > 0 {
		ai.content.WriteByte('\n')
	}
	ai.content.Write(content)
	ai.versionHash = hash64(ai.content.String())

	baseName := strings.TrimSuffix(filepath.Base(name), ext)
	ai.servePath = fmt.Sprintf("%s/%s.%016x%s", c.servePrefix, baseName, ai.versionHash, ext)

	if oldServePath != "" && oldServePath != ai.servePath {
		delete(c.servePathToName, oldServePath)
	}
	c.servePathToName[ai.servePath] = name
	c.servePathToName[c.servePrefix+"/"+name] = name

	return nil
}

// AssetPath returns the versioned path of a named asset, or "" if the asset
// does not exist.
func (c *assetCollector) AssetPath(name string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if ai, ok := c.assets[name]; ok {
		return ai.servePath
	}
	return ""
}

// ServeAsset writes the asset the request path names. It reports false if
// the path does not belong to any asset.
func (c *assetCollector) ServeAsset(w http.ResponseWriter, r *http.Request) (bool, error) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		return false, nil
	}

	c.mu.RLock()
	name, found := c.servePathToName[r.URL.Path]
	var content string
	var versionHash uint64
	if found {
		ai := c.assets[name]
		content = ai.content.String()
		versionHash = ai.versionHash
	}
	c.mu.RUnlock()

	if !found {
		return false, nil
	}

	w.Header().Set("Content-Type", contentTypes[filepath.Ext(name)])
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	versionHex := fmt.Sprintf("%x", versionHash)
	w.Header().Set("ETag", `"`+versionHex+`"`)

	if match := r.Header.Get("If-None-Match"); match != "" && strings.Contains(match, versionHex) {
		w.WriteHeader(http.StatusNotModified)
		return true, nil
	}

	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return true, nil
	}

	if _, err := io.WriteString(w, content); err != nil {
		return true, fmt.Errorf("write asset content %s: %w", r.URL.Path, err)
	}
	return true, nil
}
