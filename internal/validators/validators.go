package validators

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/atelierhub/atelier-orders/internal/models"
)

// Ограничения входных данных
const (
	MaxTitleLength   = 150
	MaxMessageLength = 5000
	MinItemQty       = 1
	MaxItemQty       = 100000
	MaxMethodLength  = 30
	MaxRefCodeLength = 80

	MaxUploadSizeBytes = 10 * 1024 * 1024
)

// allowedUploadExtensions - белый список расширений вложений
var allowedUploadExtensions = map[string]struct{}{
	".pdf":  {},
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".zip":  {},
}

var (
	ErrTitleRequired    = errors.New("title required")
	ErrTitleTooLong     = errors.New("title too long")
	ErrInvalidQty       = errors.New("invalid qty")
	ErrEmptyMessage     = errors.New("message cannot be empty")
	ErrMessageTooLong   = errors.New("message too long")
	ErrInvalidPrice     = errors.New("invalid price values")
	ErrInvalidAmount    = errors.New("amount must be > 0")
	ErrInvalidPayStatus = errors.New("invalid payment status")
	ErrFileTooLarge     = errors.New("file too large (max 10MB)")
	ErrUnsupportedFile  = errors.New("unsupported file type")
)

// CheckTitle проверяет заголовок заказа (после обрезки пробелов)
func CheckTitle(title string) error {
	if title == "" {
		return ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

// CheckItems проверяет пачку позиций заказа, пустая пачка допустима
func CheckItems(items []models.OrderItemRequest) error {
	for _, item := range items {
		if item.Qty < MinItemQty || item.Qty > MaxItemQty {
			return ErrInvalidQty
		}
	}
	return nil
}

// CheckMessage проверяет текст сообщения (после обрезки пробелов)
func CheckMessage(text string) error {
	if text == "" {
		return ErrEmptyMessage
	}
	if utf8.RuneCountInString(text) > MaxMessageLength {
		return ErrMessageTooLong
	}
	return nil
}

// CheckPricing проверяет значения цены и предоплаты
func CheckPricing(totalPrice int64, depositAmount int64) error {
	if totalPrice < 0 || depositAmount < 0 {
		return ErrInvalidPrice
	}
	return nil
}

// CheckPayment проверяет запрос на регистрацию платежа
func CheckPayment(request models.PaymentRequest) error {
	if request.Amount <= 0 {
		return ErrInvalidAmount
	}
	if !models.ValidPaymentStatus(request.Status) {
		return ErrInvalidPayStatus
	}
	if utf8.RuneCountInString(request.Method) > MaxMethodLength {
		return fmt.Errorf("method too long (max %d)", MaxMethodLength)
	}
	if utf8.RuneCountInString(request.RefCode) > MaxRefCodeLength {
		return fmt.Errorf("ref_code too long (max %d)", MaxRefCodeLength)
	}
	return nil
}

// CheckUpload проверяет имя и размер загружаемого вложения
func CheckUpload(name string, size int64) error {
	if size > MaxUploadSizeBytes {
		return ErrFileTooLarge
	}
	name = strings.ToLower(name)
	dot := strings.LastIndex(name, ".")
	if dot == -1 {
		return ErrUnsupportedFile
	}
	if _, ok := allowedUploadExtensions[name[dot:]]; !ok {
		return ErrUnsupportedFile
	}
	return nil
}

// TruncateField обрезает пробелы и ограничивает длину строкового поля.
// Длина считается в символах, обрезка не рвёт многобайтовые руны.
func TruncateField(value string, limit int) string {
	value = strings.TrimSpace(value)
	if utf8.RuneCountInString(value) > limit {
		return string([]rune(value)[:limit])
	}
	return value
}
