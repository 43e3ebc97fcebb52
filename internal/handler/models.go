package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Запросы: обязательные поля - указатели, чтобы отличать "не передано" от пустой строки.

type TeamRequest struct {
	Name        *string `json:"name" validate:"required"`
	Description *string `json:"description" validate:"required"`
}

type TeamMemberRequest struct {
	Name  *string `json:"name" validate:"required"`
	Email *string `json:"email" validate:"required"`
	Role  *string `json:"role" validate:"required"`
}

type CreateDocumentRequest struct {
	Title    *string     `json:"title" validate:"required"`
	Content  *string     `json:"content" validate:"required"`
	TeamID   *string     `json:"team_id" validate:"required"`
	AuthorID *string     `json:"author_id" validate:"required"`
	Tags     Field[Tags] `json:"tags"`
}

// UpdateDocumentRequest - частичное обновление, см. Field.
type UpdateDocumentRequest struct {
	Title    Field[string] `json:"title"`
	Content  Field[string] `json:"content"`
	TeamID   Field[string] `json:"team_id"`
	AuthorID Field[string] `json:"author_id"`
	Tags     Field[Tags]   `json:"tags"`
}

type SlackMessageRequest struct {
	User      *string `json:"user" validate:"required"`
	Text      *string `json:"text" validate:"required"`
	Timestamp any     `json:"timestamp"`
}

type SlackThreadRequest struct {
	Channel  *string               `json:"channel" validate:"required"`
	Messages []SlackMessageRequest `json:"messages" validate:"required,dive"`
}

type SlackThreadsRequest struct {
	Title    *string              `json:"title" validate:"required"`
	TeamID   *string              `json:"team_id" validate:"required"`
	AuthorID *string              `json:"author_id" validate:"required"`
	Tags     Field[Tags]          `json:"tags"`
	Threads  []SlackThreadRequest `json:"threads" validate:"required,dive"`
}

type TeamMemberResponse struct {
	ID        string `json:"id"`
	TeamID    string `json:"team_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type TeamResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	CreatedAt   string               `json:"created_at"`
	Members     []TeamMemberResponse `json:"members"`
}

type DocumentResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	TeamID      string   `json:"team_id"`
	AuthorID    string   `json:"author_id"`
	AuthorName  string   `json:"author_name"`
	Tags        []string `json:"tags"`
	Status      string   `json:"status"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
	PublishedAt *string  `json:"published_at"`
}

type StatsResponse struct {
	Teams     int `json:"teams"`
	Members   int `json:"members"`
	Documents int `json:"documents"`
}

type InfoResponse struct {
	Message       string        `json:"message"`
	Version       string        `json:"version"`
	Documentation string        `json:"documentation"`
	Stats         StatsResponse `json:"stats"`
}
