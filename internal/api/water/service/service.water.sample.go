// Package watersvc chứa logic sinh dữ liệu mẫu và truy vấn cho domain Water.
package watersvc

import (
	"math"
	"time"
)

// SeededFloat ánh xạ một khóa chuỗi bất kỳ thành số thực ổn định trong [0, 1).
// Cùng một khóa luôn cho cùng một giá trị giữa các lần chạy / tiến trình,
// đảm bảo seeding lặp lại sinh ra dữ liệu giống hệt khi đầu vào không đổi.
//
// Thuật toán: fold các ký tự của khóa vào một số nguyên 32-bit có dấu
// (hash = hash*31 + mã ký tự, wraparound 32-bit), sau đó lấy phần thập phân
// của |sin(hash)|. Phân bố chỉ cần "trông đều" vì đầu ra là dữ liệu mẫu.
func SeededFloat(key string) float64 {
	var hash int32
	for _, r := range key {
		hash = hash<<5 - hash + int32(r)
	}
	value := math.Abs(math.Sin(float64(hash)))
	return value - math.Floor(value)
}

// SeededNumber scale giá trị của SeededFloat vào [min, max] và làm tròn
// về số chữ số thập phân yêu cầu (làm tròn half away from zero).
func SeededNumber(min, max float64, key string, digits int) float64 {
	raw := min + SeededFloat(key)*(max-min)
	return RoundTo(raw, digits)
}

// RoundTo làm tròn half away from zero về digits chữ số thập phân.
func RoundTo(value float64, digits int) float64 {
	pow := math.Pow(10, float64(digits))
	return math.Round(value*pow) / pow
}

// ToISODate định dạng một thời điểm thành chuỗi ngày ISO (YYYY-MM-DD, UTC).
func ToISODate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// BuildDateWindow trả về danh sách ngày ISO, cũ nhất trước, kết thúc tại now.
func BuildDateWindow(now time.Time, days int) []string {
	dates := make([]string, 0, days)
	for i := days - 1; i >= 0; i-- {
		dates = append(dates, ToISODate(now.AddDate(0, 0, -i)))
	}
	return dates
}
