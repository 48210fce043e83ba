package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"profix/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestUploadPortfolioImage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/"+RouteUploadPortfolioImage, r.URL.Path)
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		assert.Equal(t, "7", r.FormValue("provider_id"))
		assert.Equal(t, "Kitchen rewiring", r.FormValue("description"))

		f, hdr, err := r.FormFile("image")
		if !assert.NoError(t, err) {
			return
		}
		defer f.Close()
		data, _ := io.ReadAll(f)
		assert.Equal(t, pngHeader, data)
		assert.Equal(t, "work.png", hdr.Filename)
		assert.Equal(t, "image/png", hdr.Header.Get("Content-Type"))

		_, _ = io.WriteString(w, `{"success":true,"message":"Portfolio image uploaded successfully","portfolio_item":{"id":9,"image_url":"uploads/portfolio/p.png","description":"Kitchen rewiring"}}`)
	}))
	t.Cleanup(ts.Close)

	c := NewClient(config.BackendConfig{BaseURL: ts.URL}, nil)
	item, err := c.UploadPortfolioImage(context.Background(), 7, "Kitchen rewiring", Image{Filename: "work.png", Data: pngHeader})
	require.NoError(t, err)
	assert.EqualValues(t, 9, item.ID)
	assert.Equal(t, "uploads/portfolio/p.png", item.ImageURL)
}

func TestUploadProviderImage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		assert.Equal(t, "7", r.FormValue("provider_id"))
		_, hdr, err := r.FormFile("image")
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, "image.jpg", hdr.Filename)
		_, _ = io.WriteString(w, `{"success":true,"message":"Image uploaded successfully","image_url":"uploads/providers/provider_7.jpg"}`)
	}))
	t.Cleanup(ts.Close)

	c := NewClient(config.BackendConfig{BaseURL: ts.URL}, nil)
	path, err := c.UploadProviderImage(context.Background(), 7, Image{Data: []byte("\xff\xd8\xff\xe0\x00\x10JFIF")})
	require.NoError(t, err)
	assert.Equal(t, "uploads/providers/provider_7.jpg", path)
}

func TestUploadRejectsEmptyImage(t *testing.T) {
	c := NewClient(config.BackendConfig{BaseURL: "http://127.0.0.1:1/"}, nil)
	_, err := c.UploadUserImage(context.Background(), 3, Image{})
	assert.Error(t, err)
}
