package store

import "github.com/MKhiriev/go-social-api/internal/logger"

// Storages aggregates the repositories handed to the service layer.
type Storages struct {
	UserRepository UserRepository
	PostRepository PostRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		PostRepository: NewPostRepository(db, logger),
	}
}
