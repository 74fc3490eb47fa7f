package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, 24*time.Hour, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 15.0, cfg.Delivery.AvgSpeedKmh)
	assert.Equal(t, 10.0, cfg.Delivery.DefaultRadiusKm)
	assert.Equal(t, 50.0, cfg.Delivery.MaxRadiusKm)
	assert.Equal(t, 0, cfg.Delivery.MaxPINAttempts, "PIN attempt limit stays disabled unless configured")
	assert.Equal(t, 15*time.Minute, cfg.Delivery.PINAttemptWindow)
	assert.Equal(t, 256, cfg.QRCode.Size)
	assert.Equal(t, "M", cfg.QRCode.ErrorCorrectionLevel)
}

func TestApplyDefaults_PreservesExplicitValues(t *testing.T) {
	cfg := &Config{
		Delivery: &DeliveryConfig{
			AvgSpeedKmh:     20,
			DefaultRadiusKm: 5,
			MaxRadiusKm:     25,
			MaxPINAttempts:  3,
		},
		QRCode: &QRCodeConfig{Size: 512, ErrorCorrectionLevel: "H"},
	}
	cfg.ApplyDefaults()

	assert.Equal(t, 20.0, cfg.Delivery.AvgSpeedKmh)
	assert.Equal(t, 5.0, cfg.Delivery.DefaultRadiusKm)
	assert.Equal(t, 25.0, cfg.Delivery.MaxRadiusKm)
	assert.Equal(t, 3, cfg.Delivery.MaxPINAttempts)
	assert.Equal(t, 512, cfg.QRCode.Size)
	assert.Equal(t, "H", cfg.QRCode.ErrorCorrectionLevel)
}
