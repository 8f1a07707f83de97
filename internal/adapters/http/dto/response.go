// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/site-content-service/internal/domain/content"
	"github.com/jsamuelsen11/site-content-service/internal/ports"
)

// ContentListResponse represents an ordered list of entities of one kind.
type ContentListResponse struct {
	Kind  string           `json:"kind"`
	Items []content.Entity `json:"items"`
	Count int              `json:"count"`
}

// ToContentListResponse wraps entities in a list response. A nil slice is
// rendered as an empty JSON array.
func ToContentListResponse(kind content.Kind, items []content.Entity) ContentListResponse {
	if items == nil {
		items = []content.Entity{}
	}
	return ContentListResponse{Kind: kind.String(), Items: items, Count: len(items)}
}

// ToProjectListResponse converts related projects to a list response.
func ToProjectListResponse(projects []content.Project) ContentListResponse {
	items := make([]content.Entity, len(projects))
	for i := range projects {
		items[i] = projects[i]
	}
	return ToContentListResponse(content.KindProject, items)
}

// MutationResponse represents the outcome of an admin create, update or delete.
type MutationResponse struct {
	State    string         `json:"state"`
	Kind     string         `json:"kind"`
	Redirect string         `json:"redirect,omitempty"`
	Message  string         `json:"message,omitempty"`
	Item     content.Entity `json:"item,omitempty"`
}

// ToMutationResponse converts a ports.MutationResult to an HTTP response DTO.
func ToMutationResponse(res *ports.MutationResult) MutationResponse {
	return MutationResponse{
		State:    string(res.State),
		Kind:     res.Kind.String(),
		Redirect: res.Redirect,
		Message:  res.Message,
		Item:     res.Entity,
	}
}

// StatsResponse represents the admin dashboard counts. Kinds that could not
// be counted appear in Errors instead of Counts.
type StatsResponse struct {
	Counts map[string]int    `json:"counts"`
	Errors map[string]string `json:"errors,omitempty"`
}

// ToStatsResponse converts ports.Stats to an HTTP response DTO.
func ToStatsResponse(s *ports.Stats) StatsResponse {
	resp := StatsResponse{Counts: make(map[string]int, len(s.Counts))}
	for k, n := range s.Counts {
		resp.Counts[k.String()] = n
	}
	if len(s.Errors) > 0 {
		resp.Errors = make(map[string]string, len(s.Errors))
		for k, err := range s.Errors {
			resp.Errors[k.String()] = err.Error()
		}
	}
	return resp
}

// RevalidateResponse acknowledges an on-demand revalidation.
type RevalidateResponse struct {
	Revalidated bool  `json:"revalidated"`
	Now         int64 `json:"now"`
}

// NewRevalidateResponse stamps the acknowledgement with now in Unix milliseconds.
func NewRevalidateResponse(now time.Time) RevalidateResponse {
	return RevalidateResponse{Revalidated: true, Now: now.UnixMilli()}
}
