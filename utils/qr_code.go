package utils

import (
	"encoding/base64"
	"fmt"

	"github.com/skip2/go-qrcode"
)

// EventQR holds a rendered join QR code for an event.
type EventQR struct {
	DataURL string `json:"qrCode"`
	JoinURL string `json:"joinUrl"`
}

// GenerateEventQR renders the join URL for an event as a PNG QR code and
// returns it as a base64 data URL ready for an <img> tag.
func GenerateEventQR(eventCode, baseURL string) (*EventQR, error) {
	if eventCode == "" {
		return nil, fmt.Errorf("event code is required")
	}

	joinURL := fmt.Sprintf("%s/join/%s", baseURL, eventCode)
	png, err := qrcode.Encode(joinURL, qrcode.High, 300)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}

	return &EventQR{
		DataURL: "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		JoinURL: joinURL,
	}, nil
}
