package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// InsertDocument inserts a document keyed by content hash, returning the
// document_id. If a document with the same hash exists, its path and size
// are refreshed and the existing ID is returned.
func (db *DB) InsertDocument(path, contentHash string, sizeBytes int64, pageCount int) (int64, error) {
	var existingID int64
	err := db.QueryRow("SELECT document_id FROM documents WHERE content_hash = ?", contentHash).Scan(&existingID)
	if err == nil {
		_, err = db.Exec(`
			UPDATE documents
			SET path = ?, size_bytes = ?, page_count = ?, updated_at = CURRENT_TIMESTAMP
			WHERE document_id = ?
		`, path, sizeBytes, pageCount, existingID)
		if err != nil {
			return 0, fmt.Errorf("failed to update document: %w", err)
		}
		return existingID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to check existing document: %w", err)
	}

	result, err := db.Exec(`
		INSERT INTO documents (path, content_hash, size_bytes, page_count)
		VALUES (?, ?, ?, ?)
	`, path, contentHash, sizeBytes, pageCount)
	if err != nil {
		return 0, fmt.Errorf("failed to insert document: %w", err)
	}

	documentID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get document ID: %w", err)
	}

	return documentID, nil
}

// UpdateDocumentAnalysis stores the analysis results for a document.
func (db *DB) UpdateDocumentAnalysis(documentID int64, title string, headingCount int, language string, isAcademic bool, academicScore float64, topKeywordsJSON string) error {
	_, err := db.Exec(`
		UPDATE documents
		SET title = ?, heading_count = ?, language = ?, is_academic = ?,
		    academic_score = ?, top_keywords = ?, updated_at = CURRENT_TIMESTAMP
		WHERE document_id = ?
	`, title, headingCount, language, isAcademic, academicScore, topKeywordsJSON, documentID)
	if err != nil {
		return fmt.Errorf("failed to update document analysis: %w", err)
	}
	return nil
}

// DocumentRecord represents a stored document row.
type DocumentRecord struct {
	DocumentID    int64
	Path          string
	ContentHash   string
	SizeBytes     int64
	PageCount     int
	CreatedAt     time.Time
	Title         string
	HeadingCount  int
	Language      string
	IsAcademic    bool
	AcademicScore float64
}

// GetDocumentByHash retrieves a document by its content hash.
// Returns nil without error when no such document exists.
func (db *DB) GetDocumentByHash(contentHash string) (*DocumentRecord, error) {
	var rec DocumentRecord
	var title, language sql.NullString
	err := db.QueryRow(`
		SELECT document_id, path, content_hash, COALESCE(size_bytes, 0), page_count,
		       created_at, title, heading_count, language, is_academic, academic_score
		FROM documents
		WHERE content_hash = ?
	`, contentHash).Scan(
		&rec.DocumentID,
		&rec.Path,
		&rec.ContentHash,
		&rec.SizeBytes,
		&rec.PageCount,
		&rec.CreatedAt,
		&title,
		&rec.HeadingCount,
		&language,
		&rec.IsAcademic,
		&rec.AcademicScore,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	if title.Valid {
		rec.Title = title.String
	}
	if language.Valid {
		rec.Language = language.String
	}
	return &rec, nil
}
