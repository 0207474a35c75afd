package dto

// ── user module DTOs ──

// UpdateRFIDRequest binds an RFID key to the account with the given email.
type UpdateRFIDRequest struct {
	Email   string `json:"email"    binding:"required,email"`
	RFIDKey string `json:"rfid_key" binding:"required"`
}

// UpdateDiscordRequest sets a user's Discord handle.
type UpdateDiscordRequest struct {
	DiscordUsername string `json:"discord_username" binding:"required"`
}

// UserSearchRequest looks users up by one directory column.
// Field must be one of the allow-listed column names.
type UserSearchRequest struct {
	Field string `form:"field" binding:"required"`
	Value string `form:"value" binding:"required"`
}

// ListRequest carries offset/limit paging shared by the listing endpoints.
type ListRequest struct {
	Skip  int `form:"skip"`
	Limit int `form:"limit"`
}

// Normalize clamps paging values to the legacy defaults.
func (r *ListRequest) Normalize() {
	if r.Skip < 0 {
		r.Skip = 0
	}
	if r.Limit <= 0 || r.Limit > 100 {
		r.Limit = 100
	}
}

// CreateItemRequest attaches an item to a user.
type CreateItemRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// CreateGrievanceRequest files a grievance for a user.
type CreateGrievanceRequest struct {
	Name          string `json:"name"           binding:"required"`
	Description   string `json:"description"    binding:"required"`
	ImageURL      string `json:"image_url"`
	GrievanceType string `json:"grievance_type" binding:"required"`
}
