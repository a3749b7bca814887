package storage

import (
	"context"
	"fmt"

	"github.com/atelierhub/atelier-orders/internal/models"
)

const (
	InsertFile = `INSERT INTO ORDER_FILES (order_id, uploaded_by, file_name, storage_key, file_type, size, created_at)
				  VALUES ($1, $2, $3, $4, $5, $6, NOW())
				  RETURNING id;`
	GetFilesByOrder = `SELECT id, order_id, uploaded_by, file_name, storage_key, file_type, size, created_at
					   FROM ORDER_FILES
					   WHERE order_id = $1
					   ORDER BY created_at;`
)

type FileDatabase struct {
	DB *Database
}

// Создание хранилища
func NewFilesStorage(db *Database) FilesStorage {
	return &FileDatabase{DB: db}
}

func (s *FileDatabase) AddFile(ctx context.Context, file models.FileData) (int64, error) {
	var fileID int64
	err := s.DB.Pool.QueryRow(ctx, InsertFile,
		file.OrderID,
		file.UploaderUUID,
		file.FileName,
		file.StorageKey,
		file.FileType,
		file.Size,
	).Scan(&fileID)
	if err != nil {
		return 0, fmt.Errorf("failed to add file: %w", err)
	}
	return fileID, nil
}

func (s *FileDatabase) GetFiles(ctx context.Context, orderID int64) ([]models.FileData, error) {
	var files []models.FileData
	rows, err := s.DB.Pool.Query(ctx, GetFilesByOrder, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get files: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var file models.FileData
		err := rows.Scan(
			&file.ID,
			&file.OrderID,
			&file.UploaderUUID,
			&file.FileName,
			&file.StorageKey,
			&file.FileType,
			&file.Size,
			&file.CreatedAt,
		)
		if err != nil {
			return files, fmt.Errorf("failed scan file data: %w", err)
		}
		files = append(files, file)
	}
	return files, rows.Err()
}
