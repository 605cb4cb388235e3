package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"dental-clinic-service/config"
)

// ErrPDFRenderer is returned when the rendering service fails; handlers
// surface it as an upstream failure.
var ErrPDFRenderer = errors.New("pdf renderer request failed")

// PDFRenderer converts an HTML document into PDF bytes. Layout and
// rendering are delegated entirely to the external service.
type PDFRenderer interface {
	Render(ctx context.Context, html string) ([]byte, error)
}

type pdfRenderer struct {
	config config.PDFConfig
	client *http.Client
}

func NewPDFRenderer(cfg config.PDFConfig) PDFRenderer {
	return &pdfRenderer{
		config: cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (r *pdfRenderer) Render(ctx context.Context, html string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.config.BaseURL+"/render", strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "text/html")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFRenderer, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrPDFRenderer, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
