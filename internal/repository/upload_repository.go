package repository

import (
	"database/sql"

	"listinglab/internal/model"
)

// UploadRepository registra os arquivos enviados ao dashboard.
type UploadRepository struct {
	DB *sql.DB
}

func (r *UploadRepository) EnsureSchema() error {
	_, err := r.DB.Exec(`
		CREATE TABLE IF NOT EXISTS dataset_uploads (
			id UUID PRIMARY KEY,
			file_name TEXT NOT NULL,
			size_bytes BIGINT NOT NULL,
			row_count INT NOT NULL,
			column_count INT NOT NULL,
			uploaded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	return err
}

func (r *UploadRepository) Save(u model.DatasetUpload) error {
	_, err := r.DB.Exec(`
		INSERT INTO dataset_uploads (id, file_name, size_bytes, row_count, column_count, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING
	`, u.ID, u.FileName, u.SizeBytes, u.Rows, u.Columns, u.UploadedAt)
	return err
}

func (r *UploadRepository) List(limit int) ([]model.DatasetUpload, error) {
	rows, err := r.DB.Query(`
		SELECT id, file_name, size_bytes, row_count, column_count, uploaded_at
		FROM dataset_uploads
		ORDER BY uploaded_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.DatasetUpload
	for rows.Next() {
		var u model.DatasetUpload
		if err := rows.Scan(&u.ID, &u.FileName, &u.SizeBytes, &u.Rows, &u.Columns, &u.UploadedAt); err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, rows.Err()
}
