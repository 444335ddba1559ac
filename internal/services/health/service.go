package health

import (
	"context"
	"database/sql"
	"time"

	"seotext-backend/internal/shared/storage/db"
)

const pingTimeout = 2 * time.Second

// Status is the health payload.
type Status struct {
	OK        bool   `json:"ok"`
	TextStore string `json:"textStore"`
	Database  string `json:"database"`
}

// Service encapsulates health-related checks.
type Service struct {
	DB        *sql.DB
	TextStore string
}

// NewService constructs a new health service.
func NewService(database *sql.DB, textStore string) *Service {
	return &Service{DB: database, TextStore: textStore}
}

// Status reports liveness and, when a database is configured, whether it answers.
func (s *Service) Status(ctx context.Context) Status {
	st := Status{OK: true, TextStore: s.TextStore, Database: "disabled"}
	if s.DB == nil {
		return st
	}
	if err := db.Ping(ctx, s.DB, pingTimeout); err != nil {
		st.OK = false
		st.Database = "unreachable"
		return st
	}
	st.Database = "ok"
	return st
}
