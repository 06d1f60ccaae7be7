package summaryimage

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/country-insights/country_insights_app/internal/core/domain"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// FileName is the artifact name under the cache directory.
const FileName = "summary.png"

const (
	imageWidth  = 640
	imageHeight = 360
	marginX     = 24
	lineHeight  = 22
)

// Renderer writes the refresh summary PNG into a cache directory.
// The write is atomic (temp file + rename) so the image endpoint never
// serves a torn file.
type Renderer struct {
	cacheDir string
}

// NewRenderer creates a renderer targeting cacheDir.
func NewRenderer(cacheDir string) *Renderer {
	return &Renderer{cacheDir: cacheDir}
}

// ImagePath returns the path the artifact is rendered to.
func (r *Renderer) ImagePath() string {
	return filepath.Join(r.cacheDir, FileName)
}

// Render produces the summary artifact for one refresh: the total country
// count, the top countries by estimated GDP, and the batch timestamp.
func (r *Renderer) Render(ctx context.Context, totalCountries int64, top []domain.TopCountry, refreshedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(r.cacheDir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, imageWidth, imageHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	lines := []string{
		"Country Insights - Refresh Summary",
		"",
		fmt.Sprintf("Total countries: %d", totalCountries),
		fmt.Sprintf("Refreshed at: %s", refreshedAt.UTC().Format(time.RFC3339)),
		"",
		"Top countries by estimated GDP:",
	}
	for i, tc := range top {
		gdp := "n/a"
		if v, ok := tc.EstimatedGDP.Value(); ok {
			gdp = v.StringFixed(2)
		}
		lines = append(lines, fmt.Sprintf("%d. %s  (GDP: %s, population: %d)", i+1, tc.Name, gdp, tc.Population))
	}

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
	}
	for i, line := range lines {
		drawer.Dot = fixed.P(marginX, marginX+lineHeight*(i+1))
		drawer.DrawString(line)
	}

	tmp, err := os.CreateTemp(r.cacheDir, FileName+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp image file: %w", err)
	}
	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to encode summary image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp image file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.ImagePath()); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to move summary image into place: %w", err)
	}
	return nil
}
