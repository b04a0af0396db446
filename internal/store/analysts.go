// internal/store/analysts.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Enterprise-CMCS/managed-care-review-sub006/internal/common/logger"
)

const analystCacheTTL = 10 * time.Minute

// AnalystStore resolves the CMS analysts assigned to a state. Lookups go
// through a redis cache first; the roster changes rarely, so a short TTL is
// enough to keep the database mostly idle.
type AnalystStore struct {
	db     *sql.DB
	redis  *redis.Client
	logger logger.Logger
}

func NewAnalystStore(db *sql.DB, rdb *redis.Client, log logger.Logger) *AnalystStore {
	return &AnalystStore{
		db:     db,
		redis:  rdb,
		logger: log.WithFields(map[string]interface{}{"component": "analyst-store"}),
	}
}

// EmailsForState returns the analyst addresses assigned to stateCode in a
// deterministic order. A state with no assigned analysts is a valid result,
// not an error.
func (s *AnalystStore) EmailsForState(ctx context.Context, stateCode string) ([]string, error) {
	cacheKey := "analysts:" + stateCode

	if raw, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
		var emails []string
		if err := json.Unmarshal([]byte(raw), &emails); err == nil {
			return emails, nil
		}
		// Corrupt cache entry, fall through to the database.
		s.redis.Del(ctx, cacheKey)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT email
		FROM state_analysts
		WHERE state_code = $1
		ORDER BY email`, stateCode)
	if err != nil {
		return nil, fmt.Errorf("querying state analysts: %w", err)
	}
	defer rows.Close()

	emails := make([]string, 0, 4)
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("scanning analyst row: %w", err)
		}
		emails = append(emails, email)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading analyst rows: %w", err)
	}

	if raw, err := json.Marshal(emails); err == nil {
		if err := s.redis.Set(ctx, cacheKey, raw, analystCacheTTL).Err(); err != nil {
			s.logger.Warn("failed to cache analyst roster", map[string]interface{}{
				"stateCode": stateCode,
				"error":     err.Error(),
			})
		}
	}

	return emails, nil
}
