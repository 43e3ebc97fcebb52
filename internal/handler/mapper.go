package handler

import (
	"fmt"
	"time"

	"github.com/convodocs/convodocs-api/internal/domain"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func domainMemberToHTTP(member *domain.TeamMember) TeamMemberResponse {
	return TeamMemberResponse{
		ID:        member.ID,
		TeamID:    member.TeamID,
		Name:      member.Name,
		Email:     member.Email,
		Role:      member.Role,
		CreatedAt: formatTime(member.CreatedAt),
	}
}

func domainMembersToHTTP(members []*domain.TeamMember) []TeamMemberResponse {
	result := make([]TeamMemberResponse, 0, len(members))
	for _, member := range members {
		result = append(result, domainMemberToHTTP(member))
	}
	return result
}

func domainTeamToHTTP(team *domain.Team) TeamResponse {
	members := make([]TeamMemberResponse, 0, len(team.Members))
	for i := range team.Members {
		members = append(members, domainMemberToHTTP(&team.Members[i]))
	}

	return TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
		CreatedAt:   formatTime(team.CreatedAt),
		Members:     members,
	}
}

func domainTeamsToHTTP(teams []*domain.Team) []TeamResponse {
	result := make([]TeamResponse, 0, len(teams))
	for _, team := range teams {
		result = append(result, domainTeamToHTTP(team))
	}
	return result
}

func httpMemberToDomain(req TeamMemberRequest) *domain.TeamMember {
	return &domain.TeamMember{
		Name:  *req.Name,
		Email: *req.Email,
		Role:  *req.Role,
	}
}

func domainDocumentToHTTP(doc *domain.Document) DocumentResponse {
	var publishedAt *string
	if doc.PublishedAt != nil {
		publishedAtStr := formatTime(*doc.PublishedAt)
		publishedAt = &publishedAtStr
	}

	tags := doc.Tags
	if tags == nil {
		tags = []string{}
	}

	return DocumentResponse{
		ID:          doc.ID,
		Title:       doc.Title,
		Content:     doc.Content,
		TeamID:      doc.TeamID,
		AuthorID:    doc.AuthorID,
		AuthorName:  doc.AuthorName,
		Tags:        tags,
		Status:      string(doc.Status),
		CreatedAt:   formatTime(doc.CreatedAt),
		UpdatedAt:   formatTime(doc.UpdatedAt),
		PublishedAt: publishedAt,
	}
}

func domainDocumentsToHTTP(docs []*domain.Document) []DocumentResponse {
	result := make([]DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		result = append(result, domainDocumentToHTTP(doc))
	}
	return result
}

func httpDocumentToDomain(req CreateDocumentRequest) *domain.Document {
	return &domain.Document{
		Title:    *req.Title,
		Content:  *req.Content,
		TeamID:   *req.TeamID,
		AuthorID: *req.AuthorID,
		Tags:     req.Tags.Value,
	}
}

func httpPatchToDomain(req UpdateDocumentRequest) domain.DocumentPatch {
	return domain.DocumentPatch{
		Title:    req.Title.Ptr(),
		Content:  req.Content.Ptr(),
		TeamID:   req.TeamID.Ptr(),
		AuthorID: req.AuthorID.Ptr(),
		Tags:     tagsPtr(req.Tags),
	}
}

func tagsPtr(f Field[Tags]) *[]string {
	p := f.Ptr()
	if p == nil {
		return nil
	}
	tags := []string(*p)
	return &tags
}

func httpThreadsToDomain(req SlackThreadsRequest) domain.ThreadImport {
	threads := make([]domain.ChatThread, 0, len(req.Threads))
	for _, thread := range req.Threads {
		messages := make([]domain.ChatMessage, 0, len(thread.Messages))
		for _, msg := range thread.Messages {
			messages = append(messages, domain.ChatMessage{
				User:      *msg.User,
				Text:      *msg.Text,
				Timestamp: timestampString(msg.Timestamp),
			})
		}
		threads = append(threads, domain.ChatThread{
			Channel:  *thread.Channel,
			Messages: messages,
		})
	}

	return domain.ThreadImport{
		Title:    *req.Title,
		TeamID:   *req.TeamID,
		AuthorID: *req.AuthorID,
		Tags:     req.Tags.Value,
		Threads:  threads,
	}
}

// timestampString принимает и строковые, и числовые метки времени Slack.
func timestampString(ts any) string {
	switch v := ts.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func domainStatsToHTTP(stats *domain.StoreStats) StatsResponse {
	return StatsResponse{
		Teams:     stats.Teams,
		Members:   stats.Members,
		Documents: stats.Documents,
	}
}
