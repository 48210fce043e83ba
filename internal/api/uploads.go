package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"

	"profix/internal/models"
)

// Image is the binary part of an upload. Bytes are sent untouched; the
// content type is sniffed from them.
type Image struct {
	Filename string
	Data     []byte
}

type formField struct {
	name, value string
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func (c *Client) upload(ctx context.Context, route string, fields []formField, img Image, required ...string) (envelope, error) {
	if len(img.Data) == 0 {
		return nil, parseError(route, fmt.Errorf("empty image"))
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, f := range fields {
		if err := mw.WriteField(f.name, f.value); err != nil {
			return nil, parseError(route, fmt.Errorf("encode field %s: %w", f.name, err))
		}
	}

	filename := img.Filename
	if filename == "" {
		filename = "image.jpg"
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, quoteEscaper.Replace(filename)))
	h.Set("Content-Type", http.DetectContentType(img.Data))
	part, err := mw.CreatePart(h)
	if err != nil {
		return nil, parseError(route, fmt.Errorf("encode image: %w", err))
	}
	if _, err := part.Write(img.Data); err != nil {
		return nil, parseError(route, fmt.Errorf("encode image: %w", err))
	}
	if err := mw.Close(); err != nil {
		return nil, parseError(route, fmt.Errorf("encode image: %w", err))
	}

	body := buf.Bytes()
	contentType := mw.FormDataContentType()
	build := func(ctx context.Context, endpoint string) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", contentType)
		return req, nil
	}
	return c.call(ctx, route, build, successEnvelope(required...))
}

func idField(name string, id models.ID) formField {
	return formField{name: name, value: strconv.FormatInt(int64(id), 10)}
}

// UploadProviderImage replaces the provider's profile photo and returns the
// stored image path.
func (c *Client) UploadProviderImage(ctx context.Context, providerID models.ID, img Image) (string, error) {
	env, err := c.upload(ctx, RouteUploadProviderImage, []formField{idField("provider_id", providerID)}, img, "image_url")
	if err != nil {
		return "", err
	}
	var path string
	if err := env.decode(RouteUploadProviderImage, "image_url", &path); err != nil {
		return "", err
	}
	return path, nil
}

func (c *Client) UploadUserImage(ctx context.Context, userID models.ID, img Image) (string, error) {
	env, err := c.upload(ctx, RouteUploadUserImage, []formField{idField("user_id", userID)}, img, "image_url")
	if err != nil {
		return "", err
	}
	var path string
	if err := env.decode(RouteUploadUserImage, "image_url", &path); err != nil {
		return "", err
	}
	return path, nil
}

// UploadPortfolioImage appends an image to the provider's portfolio.
func (c *Client) UploadPortfolioImage(ctx context.Context, providerID models.ID, description string, img Image) (*models.PortfolioImage, error) {
	fields := []formField{
		idField("provider_id", providerID),
		{name: "description", value: description},
	}
	env, err := c.upload(ctx, RouteUploadPortfolioImage, fields, img, "portfolio_item")
	if err != nil {
		return nil, err
	}
	var item models.PortfolioImage
	if err := env.decode(RouteUploadPortfolioImage, "portfolio_item", &item); err != nil {
		return nil, err
	}
	if err := checkRecords(RouteUploadPortfolioImage, "portfolio_item", item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) GetProviderPortfolio(ctx context.Context, providerID models.ID) ([]models.PortfolioImage, error) {
	return postFor[[]models.PortfolioImage](ctx, c, RouteProviderPortfolio, models.ProviderIDRequest{ProviderID: providerID}, "portfolio")
}

func (c *Client) DeletePortfolioImage(ctx context.Context, req models.DeletePortfolioRequest) (string, error) {
	return c.postMessage(ctx, RouteDeletePortfolioImage, req)
}
