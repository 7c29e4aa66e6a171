// internal/storage/sqlite.go
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"mcp-food-vision/internal/models"
)

const timeLayout = "2006-01-02T15:04:05.000Z07:00"

type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Per-connection PRAGMAs and :memory: databases need a single connection.
	db.SetMaxOpenConns(1)

	storage := &SQLiteStorage{db: db}
	if err := storage.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return storage, nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// Ping checks that the database is reachable.
func (s *SQLiteStorage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStorage) initSchema() error {
	schema := `
    PRAGMA foreign_keys = ON;

    CREATE TABLE IF NOT EXISTS analyses (
        id TEXT PRIMARY KEY,
        created_at TEXT NOT NULL,
        success INTEGER NOT NULL,
        calories REAL NOT NULL,
        protein REAL NOT NULL,
        carbs REAL NOT NULL,
        fat REAL NOT NULL,
        fiber REAL NOT NULL,
        sodium REAL NOT NULL,
        confidence REAL NOT NULL,
        processing_time_ms INTEGER NOT NULL,
        items_detected INTEGER NOT NULL,
        recognition_accuracy REAL NOT NULL,
        portion_accuracy REAL NOT NULL,
        models_used TEXT NOT NULL,
        recommendations TEXT NOT NULL,
        warnings TEXT NOT NULL
    );

    CREATE TABLE IF NOT EXISTS components (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        analysis_id TEXT NOT NULL,
        name TEXT NOT NULL,
        name_en TEXT NOT NULL,
        portion TEXT NOT NULL,
        grams REAL NOT NULL,
        calories REAL NOT NULL,
        protein REAL NOT NULL,
        carbs REAL NOT NULL,
        fat REAL NOT NULL,
        fiber REAL NOT NULL,
        sodium REAL NOT NULL,
        confidence REAL NOT NULL,
        category TEXT NOT NULL,
        provenance TEXT NOT NULL,
        FOREIGN KEY (analysis_id) REFERENCES analyses(id) ON DELETE CASCADE
    );

    CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses(created_at);
    CREATE INDEX IF NOT EXISTS idx_components_analysis_id ON components(analysis_id);
    `

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// SaveAnalysis stores a result and its components in one transaction.
func (s *SQLiteStorage) SaveAnalysis(ctx context.Context, result *models.AnalysisResult, createdAt time.Time) error {
	modelsUsed, err := json.Marshal(nonNil(result.ImageAnalysis.ModelsUsed))
	if err != nil {
		return fmt.Errorf("failed to encode models: %w", err)
	}
	recommendations, err := json.Marshal(nonNil(result.Recommendations))
	if err != nil {
		return fmt.Errorf("failed to encode recommendations: %w", err)
	}
	warnings, err := json.Marshal(nonNil(result.Warnings))
	if err != nil {
		return fmt.Errorf("failed to encode warnings: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	analysisQuery := `
        INSERT INTO analyses (id, created_at, success, calories, protein, carbs, fat, fiber, sodium,
            confidence, processing_time_ms, items_detected, recognition_accuracy, portion_accuracy,
            models_used, recommendations, warnings)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	t := result.Totals
	_, err = tx.ExecContext(ctx, analysisQuery,
		result.ID, createdAt.UTC().Format(timeLayout), result.Success,
		t.Calories, t.Protein, t.Carbs, t.Fat, t.Fiber, t.Sodium,
		result.Confidence, result.ProcessingTimeMS, result.ImageAnalysis.ItemsDetected,
		result.ImageAnalysis.RecognitionAccuracy, result.ImageAnalysis.PortionAccuracy,
		string(modelsUsed), string(recommendations), string(warnings))
	if err != nil {
		return fmt.Errorf("failed to insert analysis: %w", err)
	}

	componentQuery := `
        INSERT INTO components (analysis_id, name, name_en, portion, grams, calories, protein, carbs,
            fat, fiber, sodium, confidence, category, provenance)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	for _, c := range result.Components {
		_, err = tx.ExecContext(ctx, componentQuery,
			result.ID, c.Name, c.NameEN, c.Portion, c.Grams,
			c.Calories, c.Protein, c.Carbs, c.Fat, c.Fiber, c.Sodium,
			c.Confidence, string(c.Category), string(c.Provenance))
		if err != nil {
			return fmt.Errorf("failed to insert component: %w", err)
		}
	}

	return tx.Commit()
}

// GetAnalyses returns stored results, newest first. startDate and endDate are
// optional YYYY-MM-DD bounds in UTC.
func (s *SQLiteStorage) GetAnalyses(ctx context.Context, startDate, endDate string, limit int) ([]*models.AnalysisRecord, error) {
	query := `
        SELECT id, created_at, success, calories, protein, carbs, fat, fiber, sodium,
            confidence, processing_time_ms, items_detected, recognition_accuracy, portion_accuracy,
            models_used, recommendations, warnings
        FROM analyses
        WHERE 1=1
    `
	args := []interface{}{}

	if startDate != "" {
		query += " AND DATE(created_at) >= ?"
		args = append(args, startDate)
	}
	if endDate != "" {
		query += " AND DATE(created_at) <= ?"
		args = append(args, endDate)
	}

	query += " ORDER BY created_at DESC, rowid DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query analyses: %w", err)
	}

	records := []*models.AnalysisRecord{}
	for rows.Next() {
		rec := &models.AnalysisRecord{}
		r := &rec.AnalysisResult
		var createdAtStr, modelsUsed, recommendations, warnings string

		err := rows.Scan(
			&r.ID, &createdAtStr, &r.Success,
			&r.Totals.Calories, &r.Totals.Protein, &r.Totals.Carbs, &r.Totals.Fat, &r.Totals.Fiber, &r.Totals.Sodium,
			&r.Confidence, &r.ProcessingTimeMS, &r.ImageAnalysis.ItemsDetected,
			&r.ImageAnalysis.RecognitionAccuracy, &r.ImageAnalysis.PortionAccuracy,
			&modelsUsed, &recommendations, &warnings)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}

		if rec.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		if err := decodeList(modelsUsed, &r.ImageAnalysis.ModelsUsed); err != nil {
			rows.Close()
			return nil, err
		}
		if err := decodeList(recommendations, &r.Recommendations); err != nil {
			rows.Close()
			return nil, err
		}
		if err := decodeList(warnings, &r.Warnings); err != nil {
			rows.Close()
			return nil, err
		}

		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("failed to read analyses: %w", err)
	}
	rows.Close()

	// Components are loaded after the cursor is closed; the pool has a
	// single connection.
	for _, rec := range records {
		if err := s.loadComponents(ctx, &rec.AnalysisResult); err != nil {
			return nil, fmt.Errorf("failed to load components for analysis %s: %w", rec.ID, err)
		}
	}

	return records, nil
}

func (s *SQLiteStorage) loadComponents(ctx context.Context, result *models.AnalysisResult) error {
	query := `
        SELECT name, name_en, portion, grams, calories, protein, carbs, fat, fiber, sodium,
            confidence, category, provenance
        FROM components
        WHERE analysis_id = ?
        ORDER BY id
    `

	rows, err := s.db.QueryContext(ctx, query, result.ID)
	if err != nil {
		return fmt.Errorf("failed to query components: %w", err)
	}
	defer rows.Close()

	components := []models.NutritionComponent{}
	for rows.Next() {
		c := models.NutritionComponent{}
		var category, provenance string

		err := rows.Scan(
			&c.Name, &c.NameEN, &c.Portion, &c.Grams,
			&c.Calories, &c.Protein, &c.Carbs, &c.Fat, &c.Fiber, &c.Sodium,
			&c.Confidence, &category, &provenance)
		if err != nil {
			return fmt.Errorf("failed to scan component: %w", err)
		}

		c.Category = models.Category(category)
		c.Provenance = models.Provenance(provenance)
		components = append(components, c)
	}

	result.Components = components
	return rows.Err()
}

func decodeList(raw string, target *[]string) error {
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		return fmt.Errorf("failed to decode stored list: %w", err)
	}
	if *target == nil {
		*target = []string{}
	}
	return nil
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
