package qrcode

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reflourish/config"
	"reflourish/internal/domain/service"
)

func newTestService() service.QRCodeService {
	cfg := &config.Config{}
	cfg.QRCode = &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "M"}

	return NewQRCodeService(cfg)
}

func TestQRCodeService_EncodeAndParseHandoff(t *testing.T) {
	svc := newTestService()

	payload := &service.HandoffPayload{
		PackageID:   uuid.New(),
		VolunteerID: uuid.New(),
		Points:      42,
	}

	data, err := svc.EncodeHandoff(payload)
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	parsed, err := svc.ParseHandoff(data)
	require.NoError(t, err)
	assert.Equal(t, payload.PackageID, parsed.PackageID)
	assert.Equal(t, payload.VolunteerID, parsed.VolunteerID)
	assert.Equal(t, payload.Points, parsed.Points)
}

func TestQRCodeService_RenderPNG(t *testing.T) {
	svc := newTestService()

	data, err := svc.EncodeHandoff(&service.HandoffPayload{
		PackageID:   uuid.New(),
		VolunteerID: uuid.New(),
		Points:      5,
	})
	require.NoError(t, err)

	png, err := svc.RenderPNG(data)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}

func TestQRCodeService_ParseHandoffRejectsGarbage(t *testing.T) {
	svc := newTestService()

	_, err := svc.ParseHandoff("not json at all")
	assert.Error(t, err)
}
