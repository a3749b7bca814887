package models

import "time"

// Типы вложений к заказу
const (
	FileTypePattern   = "pattern"
	FileTypeSample    = "sample"
	FileTypeReference = "reference"
	FileTypeInvoice   = "invoice"
	FileTypeOther     = "other"
)

// ValidFileType проверяет, что строка является одним из типов вложений
func ValidFileType(fileType string) bool {
	switch fileType {
	case FileTypePattern, FileTypeSample, FileTypeReference, FileTypeInvoice, FileTypeOther:
		return true
	}
	return false
}

// FileData - модель вложения к заказу
type FileData struct {
	ID           int64
	OrderID      int64
	UploaderUUID *string
	FileName     string
	StorageKey   string
	FileType     string
	Size         int64
	CreatedAt    time.Time
}

// FileResponse - вложение для выдачи
type FileResponse struct {
	ID        int64  `json:"id"`
	FileName  string `json:"file_name"`
	FileType  string `json:"type"`
	Size      int64  `json:"size"`
	CreatedAt string `json:"created_at"`
}
