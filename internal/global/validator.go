package global

import (
	"github.com/go-playground/validator/v10"
)

// InitValidator khởi tạo validator dùng chung cho toàn bộ server
func InitValidator() {
	Validate = validator.New()
}
