package http

import (
	"github.com/randomtoy/kinun-go/internal/app"
	"github.com/randomtoy/kinun-go/internal/domain"
)

// DiagnosisResponse is the JSON shape returned by GET /v1/diagnosis.
type DiagnosisResponse struct {
	Archetype   ArchetypeResponse `json:"archetype"`
	TypeName    string            `json:"type_name"`
	BirthDate   string            `json:"birth_date"`
	DisplayDate string            `json:"display_date"`
	Message     string            `json:"message"`
	Share       ShareResp         `json:"share"`
	Meta        MetaResp          `json:"meta"`
}

type ArchetypeResponse struct {
	Index   int    `json:"index"`
	Name    string `json:"name"`
	Reading string `json:"reading"`
	Title   string `json:"title"`
	Emblem  string `json:"emblem"`
	Tagline string `json:"tagline"`
	Style   string `json:"style"`
	Tip     string `json:"tip"`
}

// ShareResp tells the client how to hand off to LINE. Desktop clients get
// QR details since they cannot follow the deep link themselves.
type ShareResp struct {
	Mode          string `json:"mode"`
	AddFriendURL  string `json:"add_friend_url"`
	MessageURL    string `json:"message_url"`
	QRImageURL    string `json:"qr_image_url,omitempty"`
	QRFallbackURL string `json:"qr_fallback_url,omitempty"`
}

type MetaResp struct {
	RequestID string `json:"request_id"`
}

type ArchetypeListResponse struct {
	Archetypes []ArchetypeResponse `json:"archetypes"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func toArchetype(a domain.Archetype) ArchetypeResponse {
	return ArchetypeResponse{
		Index:   a.Index,
		Name:    a.Name,
		Reading: a.Reading,
		Title:   a.Title,
		Emblem:  a.Emblem,
		Tagline: a.Tagline,
		Style:   a.Style,
		Tip:     a.Tip,
	}
}

func toResponse(r app.Result, share ShareResp, requestID string) DiagnosisResponse {
	return DiagnosisResponse{
		Archetype:   toArchetype(r.Diagnosis.Archetype),
		TypeName:    r.TypeName,
		BirthDate:   r.Diagnosis.Date.String(),
		DisplayDate: domain.FormatDate(r.Diagnosis.Date),
		Message:     r.Message,
		Share:       share,
		Meta:        MetaResp{RequestID: requestID},
	}
}
