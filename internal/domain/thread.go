package domain

// ChatThread - ветка обсуждения из канала чата, исходные данные для конвертации в документ.
type ChatThread struct {
	Channel  string
	Messages []ChatMessage
}

type ChatMessage struct {
	User      string
	Text      string
	Timestamp string
}

// ThreadImport - запрос на создание документа из набора веток.
type ThreadImport struct {
	Title    string
	TeamID   string
	AuthorID string
	Tags     []string
	Threads  []ChatThread
}
