package qrcode

import (
	"encoding/json"
	"strings"

	"roster/config"
	"roster/internal/domain/service"
	"roster/internal/errors"

	"github.com/skip2/go-qrcode"
)

const badgeType = "personnel"

type badgeEncoder struct {
	size  int
	level qrcode.RecoveryLevel
}

// BadgePayload is the JSON document embedded in every badge.
type BadgePayload struct {
	ServiceNumber string `json:"svc"`
	Type          string `json:"type"`
}

// NewBadgeEncoder builds the encoder from the badge configuration.
func NewBadgeEncoder(cfg *config.Config) service.BadgeEncoder {
	return NewBadgeEncoderWith(cfg.Badge.Size, cfg.Badge.RecoveryLevel)
}

// NewBadgeEncoderWith creates an encoder for the given pixel size and recovery level (L, M, Q, H).
func NewBadgeEncoderWith(size int, recoveryLevel string) service.BadgeEncoder {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(recoveryLevel) {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &badgeEncoder{size: size, level: level}
}

func (e *badgeEncoder) Encode(serviceNumber string) ([]byte, error) {
	data, err := badgeContent(serviceNumber)
	if err != nil {
		return nil, err
	}

	code, err := qrcode.New(data, e.level)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create badge QR code")
	}

	png, err := code.PNG(e.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render badge PNG")
	}

	return png, nil
}

// badgeContent is the text encoded in the QR code.
func badgeContent(serviceNumber string) (string, error) {
	if serviceNumber == "" {
		return "", errors.New("service number is required")
	}

	data, err := json.Marshal(BadgePayload{ServiceNumber: serviceNumber, Type: badgeType})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal badge payload")
	}

	return string(data), nil
}
