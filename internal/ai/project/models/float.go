package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Float число с плавающей точкой, которое в JSON всегда пишется
// с дробной частью: 72.0, а не 72.
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("unsupported float value: %v", v)
	}
	return []byte(FormatFloat(v)), nil
}

func (f *Float) UnmarshalJSON(data []byte) error {
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid float %q: %w", data, err)
	}
	*f = Float(v)
	return nil
}

// FormatFloat возвращает кратчайшее представление v. Экспонента
// используется только для |v| < 1e-4 и |v| >= 1e16.
func FormatFloat(v float64) string {
	abs := math.Abs(v)
	if v != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
