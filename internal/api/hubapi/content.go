package hubapi

import "time"

type Workshop struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	InstructorID string    `json:"instructorId,omitempty"`
	Published    bool      `json:"published"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type WorkshopList struct {
	Value []Workshop `json:"value"`
	Meta  ListMeta   `json:"meta"`
}

type CreateWorkshopRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type PatchWorkshopRequest struct {
	Published *bool `json:"published,omitempty"`
}

type LibraryResource struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Kind      string    `json:"kind"`
	URL       string    `json:"url,omitempty"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type LibraryResourceList struct {
	Value []LibraryResource `json:"value"`
	Meta  ListMeta          `json:"meta"`
}

type CreateLibraryResourceRequest struct {
	Title string `json:"title"`
	Kind  string `json:"kind"`
	URL   string `json:"url,omitempty"`
}
