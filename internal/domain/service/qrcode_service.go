package service

import "github.com/google/uuid"

// HandoffPayload is the content encoded into a package's handoff QR code
// at claim time. It identifies the trip, not the secret: the PIN itself is
// never embedded in the QR.
type HandoffPayload struct {
	PackageID   uuid.UUID `json:"package_id"`
	VolunteerID uuid.UUID `json:"volunteer_id"`
	Points      int       `json:"points"`
}

// QRCodeService defines the interface for handoff QR code generation and parsing.
type QRCodeService interface {
	// EncodeHandoff serializes a handoff payload into the string stored on
	// the package and embedded in its QR code.
	EncodeHandoff(payload *HandoffPayload) (string, error)

	// RenderPNG renders previously encoded handoff data as a QR PNG image.
	RenderPNG(data string) ([]byte, error)

	// ParseHandoff decodes scanned QR data back into a handoff payload.
	ParseHandoff(data string) (*HandoffPayload, error)
}
