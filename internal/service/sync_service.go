package service

import "context"

const ConfluenceSyncMessage = "Sync with Confluence completed successfully"

// SyncService - точка интеграции с внешней системой публикации.
// Сейчас это заглушка: сетевых вызовов нет.
type SyncService interface {
	SyncConfluence(ctx context.Context) (string, error)
}
