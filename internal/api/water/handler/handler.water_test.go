// Package waterhdl - Test parse tham số limit: giá trị hỏng luôn rơi về
// mặc định của endpoint, không bao giờ gây lỗi 4xx.
package waterhdl

import (
	"math"
	"testing"
)

func TestParseLimit(t *testing.T) {
	cases := []struct {
		name     string
		value    string
		fallback int64
		want     int64
	}{
		{"rỗng dùng fallback", "", 6, 6},
		{"không phải số dùng fallback", "abc", 6, 6},
		{"số âm dùng fallback", "-3", 6, 6},
		{"số 0 dùng fallback", "0", 8, 8},
		{"NaN dùng fallback", "NaN", 6, 6},
		{"Inf dùng fallback", "Inf", 6, 6},
		{"-Inf dùng fallback", "-Inf", 6, 6},
		{"số dương hợp lệ", "12", 6, 12},
		{"số thực cắt về nguyên", "3.9", 6, 3},
		{"phân số dưới 1 dùng fallback", "0.4", 6, 6},
		{"số lớn", "1000", 6, 1000},
		{"vượt int64 chặn về max", "1e300", 6, math.MaxInt64},
		{"đúng biên int64 chặn về max", "9.3e18", 6, math.MaxInt64},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseLimit(tc.value, tc.fallback)
			if got != tc.want {
				t.Errorf("ParseLimit(%q, %d) = %d, muốn %d", tc.value, tc.fallback, got, tc.want)
			}
			if got <= 0 {
				t.Errorf("ParseLimit(%q, %d) = %d, không bao giờ được trả về giá trị không dương", tc.value, tc.fallback, got)
			}
		})
	}
}
