package repositories

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

// Store backends
const (
	BackendMemory = "memory"
	BackendJSON   = "json"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Contacts ContactRepository
	Audit    AuditRepository
}

// Options selects the contact backend and the audit sink
type Options struct {
	Backend    string
	Path       string
	IDStrategy string
	// AuditDB persists audit entries when non-nil; otherwise they are logged
	AuditDB *sql.DB
	Logger  *zap.Logger
}

// NewRepositories creates and initializes all repositories
func NewRepositories(opts Options) (*Repositories, error) {
	ids, err := NewIDGenerator(opts.IDStrategy)
	if err != nil {
		return nil, err
	}

	contacts, err := NewContactRepository(opts.Backend, opts.Path, ids)
	if err != nil {
		return nil, err
	}

	var audit AuditRepository
	if opts.AuditDB != nil {
		audit = NewAuditRepository(opts.AuditDB)
	} else {
		logger := opts.Logger
		if logger == nil {
			logger = zap.NewNop()
		}
		audit = NewLogAuditRepository(logger)
	}

	return &Repositories{
		Contacts: contacts,
		Audit:    audit,
	}, nil
}

// NewContactRepository builds the contact repository for a backend name
func NewContactRepository(backend, path string, ids IDGenerator) (ContactRepository, error) {
	switch backend {
	case BackendMemory:
		return NewMemoryContactRepository(ids), nil
	case BackendJSON, "":
		return NewJSONContactRepository(path, ids)
	}
	return nil, fmt.Errorf("unknown contact store backend %q", backend)
}
