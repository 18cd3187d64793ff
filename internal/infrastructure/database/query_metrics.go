package database

import (
	"time"

	"gorm.io/gorm"

	"jan-server/services/chat-api/internal/infrastructure/metrics"
)

const queryStartKey = "chat-api:query_start"

// QueryMetrics is a gorm plugin that records statement latency per operation
// and table.
type QueryMetrics struct{}

func (QueryMetrics) Name() string {
	return "chat-api:query-metrics"
}

func (p QueryMetrics) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	hooks := []struct {
		op       string
		register func(before, after func(*gorm.DB)) error
	}{
		{"create", func(before, after func(*gorm.DB)) error {
			if err := cb.Create().Before("gorm:create").Register("metrics:before_create", before); err != nil {
				return err
			}
			return cb.Create().After("gorm:create").Register("metrics:after_create", after)
		}},
		{"query", func(before, after func(*gorm.DB)) error {
			if err := cb.Query().Before("gorm:query").Register("metrics:before_query", before); err != nil {
				return err
			}
			return cb.Query().After("gorm:query").Register("metrics:after_query", after)
		}},
		{"update", func(before, after func(*gorm.DB)) error {
			if err := cb.Update().Before("gorm:update").Register("metrics:before_update", before); err != nil {
				return err
			}
			return cb.Update().After("gorm:update").Register("metrics:after_update", after)
		}},
		{"delete", func(before, after func(*gorm.DB)) error {
			if err := cb.Delete().Before("gorm:delete").Register("metrics:before_delete", before); err != nil {
				return err
			}
			return cb.Delete().After("gorm:delete").Register("metrics:after_delete", after)
		}},
		{"raw", func(before, after func(*gorm.DB)) error {
			if err := cb.Raw().Before("gorm:raw").Register("metrics:before_raw", before); err != nil {
				return err
			}
			return cb.Raw().After("gorm:raw").Register("metrics:after_raw", after)
		}},
	}

	for _, h := range hooks {
		if err := h.register(startTimer, stopTimer(h.op)); err != nil {
			return err
		}
	}
	return nil
}

func startTimer(db *gorm.DB) {
	db.InstanceSet(queryStartKey, time.Now())
}

func stopTimer(op string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		v, ok := db.InstanceGet(queryStartKey)
		if !ok {
			return
		}
		start, ok := v.(time.Time)
		if !ok {
			return
		}
		table := db.Statement.Table
		if table == "" {
			table = "unknown"
		}
		metrics.RecordDBQuery(op, table, time.Since(start).Seconds(), db.Error != nil)
	}
}
