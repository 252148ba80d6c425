package note

import "time"

type Note struct {
	ID        string
	UserID    string
	Title     string
	Body      string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type NoteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToResponse(n Note) NoteResponse {
	return NoteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Body:      n.Body,
		Color:     n.Color,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

type CreateNoteRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Color string `json:"color,omitempty"`
}

type UpdateNoteRequest struct {
	Title *string `json:"title,omitempty"`
	Body  *string `json:"body,omitempty"`
	Color *string `json:"color,omitempty"`
}
