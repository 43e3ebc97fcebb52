package domain

// StoreStats - количество записей в хранилище на момент чтения.
type StoreStats struct {
	Teams     int
	Members   int
	Documents int
}
