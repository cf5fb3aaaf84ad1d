package model

import "time"

// DatasetUpload registra um arquivo enviado ao dashboard (auditoria opcional).
type DatasetUpload struct {
	ID         string
	FileName   string
	SizeBytes  int64
	Rows       int
	Columns    int
	UploadedAt time.Time
}
