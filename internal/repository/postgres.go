// Package repository provides the PostgreSQL-backed data source for the
// catalog and best-effort logging of executed queries.
package repository

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/Neeraj-Gupta12/PropBot/internal/model"
)

// PostgresRepository handles database operations. It implements
// datasource.Source (the three partial record sets live in three tables) and
// service.QueryLogger.
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// LoadBasics loads the basics partial record set.
func (r *PostgresRepository) LoadBasics(ctx context.Context) ([]model.Basic, error) {
	var rows []model.Basic
	query := `
		SELECT id, title, location, price, type, created_at
		FROM property_basics
		ORDER BY created_at, id
	`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to load basics: %w", err)
	}
	return rows, nil
}

// LoadCharacteristics loads the characteristics partial record set.
func (r *PostgresRepository) LoadCharacteristics(ctx context.Context) ([]model.Characteristic, error) {
	var rows []characteristicRow
	query := `
		SELECT id, title, location, price, type, bedrooms, bathrooms,
		       size_sqft, rating, description, amenities
		FROM property_characteristics
	`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to load characteristics: %w", err)
	}

	out := make([]model.Characteristic, len(rows))
	for i, row := range rows {
		out[i] = model.Characteristic{
			ID:          row.ID,
			Title:       row.Title,
			Location:    row.Location,
			Price:       row.Price,
			Type:        row.Type,
			Bedrooms:    row.Bedrooms,
			Bathrooms:   row.Bathrooms,
			SizeSqft:    row.SizeSqft,
			Rating:      row.Rating,
			Description: row.Description,
			Amenities:   row.Amenities,
		}
	}
	return out, nil
}

// LoadMedia loads the media partial record set.
func (r *PostgresRepository) LoadMedia(ctx context.Context) ([]model.Media, error) {
	var rows []mediaRow
	query := `
		SELECT id, images, image_url
		FROM property_images
	`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to load media: %w", err)
	}

	out := make([]model.Media, len(rows))
	for i, row := range rows {
		out[i] = model.Media{
			ID:       row.ID,
			Images:   row.Images,
			ImageURL: row.ImageURL,
		}
	}
	return out, nil
}

// LogSearch logs one executed filter query
func (r *PostgresRepository) LogSearch(ctx context.Context, searchID, keyword string, spec *model.FilterSpec, resultCount, responseTimeMs int) error {
	specJSON, err := json.Marshal(spec)
	if err != nil {
		return fmt.Errorf("failed to encode filter spec: %w", err)
	}
	query := `
		INSERT INTO search_logs (search_id, keyword, filter_spec, result_count, response_time_ms)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.db.ExecContext(ctx, query, searchID, keyword, specJSON, resultCount, responseTimeMs); err != nil {
		return fmt.Errorf("failed to log search: %w", err)
	}
	return nil
}

// LogChat logs one chatbot exchange
func (r *PostgresRepository) LogChat(ctx context.Context, chatID, message string, kind model.IntentKind, resultCount int) error {
	query := `
		INSERT INTO chat_logs (chat_id, message, intent_kind, result_count)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.db.ExecContext(ctx, query, chatID, message, string(kind), resultCount); err != nil {
		return fmt.Errorf("failed to log chat: %w", err)
	}
	return nil
}

// characteristicRow mirrors model.Characteristic with a scannable JSONB
// amenities column.
type characteristicRow struct {
	ID          string    `db:"id"`
	Title       *string   `db:"title"`
	Location    *string   `db:"location"`
	Price       *float64  `db:"price"`
	Type        *string   `db:"type"`
	Bedrooms    int       `db:"bedrooms"`
	Bathrooms   int       `db:"bathrooms"`
	SizeSqft    float64   `db:"size_sqft"`
	Rating      float64   `db:"rating"`
	Description string    `db:"description"`
	Amenities   jsonArray `db:"amenities"`
}

type mediaRow struct {
	ID       string    `db:"id"`
	Images   jsonArray `db:"images"`
	ImageURL string    `db:"image_url"`
}

// jsonArray scans a JSONB array of strings
type jsonArray []string

// Value implements driver.Valuer interface
func (j jsonArray) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements sql.Scanner interface
func (j *jsonArray) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return json.Unmarshal([]byte(value.(string)), j)
	}
	return json.Unmarshal(bytes, j)
}
