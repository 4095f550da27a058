package dto

import (
	"time"

	"backend/internal/app/ds"
)

// ============ Обновления ПО (Updates) ============

type UpdateResponse struct {
	ID           uint      `json:"id"`
	Version      string    `json:"version"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	ReleaseNotes string    `json:"release_notes,omitempty"`
	Size         int64     `json:"size"`
	DownloadURL  string    `json:"download_url,omitempty"`
	IsRequired   bool      `json:"is_required"`
	ReleaseDate  time.Time `json:"releaseDate"`
}

type CreateUpdateRequest struct {
	Version      string `json:"version" binding:"required"`
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	ReleaseNotes string `json:"release_notes"`
	Size         int64  `json:"size" binding:"omitempty,gte=0"`
	DownloadURL  string `json:"download_url"`
	IsRequired   bool   `json:"is_required"`
}

type UpdateUpdateRequest struct {
	Version      *string `json:"version"`
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	ReleaseNotes *string `json:"release_notes"`
	Size         *int64  `json:"size" binding:"omitempty,gte=0"`
	DownloadURL  *string `json:"download_url"`
	IsRequired   *bool   `json:"is_required"`
}

func NewUpdateResponse(u *ds.Update) UpdateResponse {
	return UpdateResponse{
		ID:           u.ID,
		Version:      u.Version,
		Title:        u.Title,
		Description:  u.Description,
		ReleaseNotes: u.ReleaseNotes,
		Size:         u.Size,
		DownloadURL:  u.DownloadURL,
		IsRequired:   u.IsRequired,
		ReleaseDate:  u.ReleaseDate,
	}
}

func (r *UpdateUpdateRequest) ToUpdate() ds.UpdateUpdate {
	return ds.UpdateUpdate{
		Version:      r.Version,
		Title:        r.Title,
		Description:  r.Description,
		ReleaseNotes: r.ReleaseNotes,
		Size:         r.Size,
		DownloadURL:  r.DownloadURL,
		IsRequired:   r.IsRequired,
	}
}
