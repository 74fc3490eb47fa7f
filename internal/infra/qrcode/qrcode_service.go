// Package qrcode renders handoff payloads as QR code images.
package qrcode

import (
	"encoding/json"
	"fmt"

	"reflourish/config"
	"reflourish/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := 256
	levelName := "M"
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		if cfg.QRCode.ErrorCorrectionLevel != "" {
			levelName = cfg.QRCode.ErrorCorrectionLevel
		}
	}

	var level qrcode.RecoveryLevel
	switch levelName {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// EncodeHandoff serializes a handoff payload into the string stored on the
// package and embedded in its QR code.
func (s *qrcodeService) EncodeHandoff(payload *service.HandoffPayload) (string, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal handoff payload: %w", err)
	}

	return string(jsonData), nil
}

// RenderPNG renders previously encoded handoff data as a QR PNG image.
func (s *qrcodeService) RenderPNG(data string) ([]byte, error) {
	qrCode, err := qrcode.New(data, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseHandoff decodes scanned QR data back into a handoff payload.
func (s *qrcodeService) ParseHandoff(data string) (*service.HandoffPayload, error) {
	payload := &service.HandoffPayload{}
	if err := json.Unmarshal([]byte(data), payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal handoff payload: %w", err)
	}

	return payload, nil
}
