package katex

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssetCollector_AddAsset(t *testing.T) {
	assets := newAssetCollector("assets")

	err := assets.AddAsset("test.css", []byte(".katex { font: normal 1.21em KaTeX_Main; }"))
	require.NoError(t, err)

	assetPath := assets.AssetPath("test.css")
	require.Equal(t, "/assets/test.c3d3d3e1844f23f4.css", assetPath)
	assertAssetContent(t, assets, assetPath, ".katex { font: normal 1.21em KaTeX_Main; }")

	// Appending content changes the version.
	err = assets.AddAsset("test.css", []byte(".katex .mfrac { text-align: center; }"))
	require.NoError(t, err)

	newAssetPath := assets.AssetPath("test.css")
	require.Equal(t, "/assets/test.a808ec28b453ace9.css", newAssetPath)
	assertAssetContent(t, assets, newAssetPath, ".katex { font: normal 1.21em KaTeX_Main; }\n.katex .mfrac { text-align: center; }")
	assertAssetNotFound(t, assets, assetPath)

	// The plain name is always served.
	assertAssetContent(t, assets, "/assets/test.css", ".katex { font: normal 1.21em KaTeX_Main; }\n.katex .mfrac { text-align: center; }")

	// Repeated content is ignored.
	err = assets.AddAsset("test.css", []byte(".katex { font: normal 1.21em KaTeX_Main; }"))
	require.NoError(t, err)
	require.Equal(t, newAssetPath, assets.AssetPath("test.css"))

	err = assets.AddAsset("test.js", []byte("console.log(1)"))
	require.NoError(t, err)
	require.Equal(t, "/assets/test.a7c5636e921e0630.js", assets.AssetPath("test.js"))

	require.Error(t, assets.AddAsset("test.txt", []byte("plain")))
	require.Empty(t, assets.AssetPath("missing.css"))
}

func TestAssetCollector_ServeAsset(t *testing.T) {
	assets := newAssetCollector("/assets/")
	require.NoError(t, assets.AddAsset("test.js", []byte("console.log(1)")))
	assetPath := assets.AssetPath("test.js")

	t.Run("content type", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handled, err := assets.ServeAsset(rr, httptest.NewRequest(http.MethodGet, assetPath, nil))
		require.NoError(t, err)
		require.True(t, handled)
		require.Equal(t, "application/javascript; charset=utf-8", rr.Header().Get("Content-Type"))
		require.Equal(t, `"a7c5636e921e0630"`, rr.Header().Get("ETag"))
	})

	t.Run("not modified", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, assetPath, nil)
		req.Header.Set("If-None-Match", `"a7c5636e921e0630"`)
		rr := httptest.NewRecorder()
		handled, err := assets.ServeAsset(rr, req)
		require.NoError(t, err)
		require.True(t, handled)
		require.Equal(t, http.StatusNotModified, rr.Code)
		require.Empty(t, rr.Body.String())
	})

	t.Run("head", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handled, err := assets.ServeAsset(rr, httptest.NewRequest(http.MethodHead, assetPath, nil))
		require.NoError(t, err)
		require.True(t, handled)
		require.Equal(t, http.StatusOK, rr.Code)
		require.Empty(t, rr.Body.String())
	})

	t.Run("post is not handled", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handled, err := assets.ServeAsset(rr, httptest.NewRequest(http.MethodPost, assetPath, nil))
		require.NoError(t, err)
		require.False(t, handled)
	})
}

// assertAssetContent checks that the asset at the given path exists and has the expected content.
func assertAssetContent(t *testing.T, assets *assetCollector, path, expectedContent string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()

	handled, err := assets.ServeAsset(rr, req)
	require.NoError(t, err, path)
	require.True(t, handled, "asset at path %q was not handled", path)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, expectedContent, rr.Body.String())
}

// assertAssetNotFound checks that ServeAsset does not handle the path.
func assertAssetNotFound(t *testing.T, assets *assetCollector, path string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()

	handled, err := assets.ServeAsset(rr, req)
	require.NoError(t, err, path)
	require.False(t, handled, "expected %q to be unhandled, got code=%d body=%q", path, rr.Code, rr.Body.String())
}
