package qrcode

import (
	"net/url"
	"strconv"
	"strings"

	"profilemap/config"
	"profilemap/internal/domain/service"
	"profilemap/internal/errors"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a QR code service from the qrcode config section.
// Without a configured base URL, links point at the local HTTP port.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultSize
	level := "M"
	baseURL := "http://localhost:" + strconv.Itoa(cfg.HTTP.Port)

	if qc := cfg.QRCode; qc != nil {
		if qc.Size > 0 {
			size = qc.Size
		}
		if qc.ErrorCorrectionLevel != "" {
			level = qc.ErrorCorrectionLevel
		}
		if qc.BaseURL != "" {
			baseURL = qc.BaseURL
		}
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(level),
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// ProfileLink returns the public page URL of a profile
func (s *qrcodeService) ProfileLink(profileID string) string {
	return s.baseURL + "/profiles/" + url.PathEscape(profileID)
}

// GenerateProfileQR renders ProfileLink as a PNG
func (s *qrcodeService) GenerateProfileQR(profileID string) ([]byte, error) {
	if profileID == "" {
		return nil, errors.New("profile id must not be empty")
	}

	code, err := qrcode.New(s.ProfileLink(profileID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	png, err := code.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return png, nil
}
