package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()
	assert.Equal(t, "uploads", cfg.Dirs.UploadDir)
	assert.Equal(t, "outputs", cfg.Dirs.OutputDir)
	assert.Equal(t, "pdftoppm", cfg.OCR.Pdftoppm)
	assert.Equal(t, "eng", cfg.OCR.TesseractLang)
	assert.Equal(t, 300, cfg.OCR.DPI)
	assert.Equal(t, 7*24*time.Hour, cfg.Retention.MaxAge)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("UPLOAD_DIR", "/data/in")
	t.Setenv("OCR_DPI", "150")
	t.Setenv("OCR_MAX_PAGES", "5")
	t.Setenv("RETENTION_MAX_AGE", "48h")

	cfg := LoadConfig()
	assert.Equal(t, "/data/in", cfg.Dirs.UploadDir)
	assert.Equal(t, 150, cfg.OCR.DPI)
	assert.Equal(t, 5, cfg.OCR.MaxPages)
	assert.Equal(t, 48*time.Hour, cfg.Retention.MaxAge)
}

func TestLoadConfig_BadValuesFallBack(t *testing.T) {
	t.Setenv("OCR_DPI", "not-a-number")
	t.Setenv("RETENTION_MAX_AGE", "soon")

	cfg := LoadConfig()
	assert.Equal(t, 300, cfg.OCR.DPI)
	assert.Equal(t, 7*24*time.Hour, cfg.Retention.MaxAge)
}

func TestConfigValidate(t *testing.T) {
	cfg := LoadConfig()
	cfg.Dirs.OutputDir = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)

	cfg = LoadConfig()
	cfg.OCR.DPI = 0
	assert.Error(t, cfg.Validate())
}
