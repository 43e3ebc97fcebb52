package service

import (
	"strings"

	"github.com/convodocs/convodocs-api/internal/domain"
)

// RenderThreads собирает markdown-документ из веток чата в исходном порядке:
// заголовок документа, затем для каждой ветки заголовок канала и сообщения
// вида "**user**:\ntext", разделенные пустой строкой. Timestamp не используется.
func RenderThreads(title string, threads []domain.ChatThread) string {
	var b strings.Builder

	b.WriteString("# ")
	b.WriteString(title)
	b.WriteString("\n\n")

	for _, thread := range threads {
		b.WriteString("## Thread from ")
		b.WriteString(thread.Channel)
		b.WriteString("\n\n")

		for _, msg := range thread.Messages {
			b.WriteString("**")
			b.WriteString(msg.User)
			b.WriteString("**:\n")
			b.WriteString(msg.Text)
			b.WriteString("\n\n")
		}
	}

	return b.String()
}
