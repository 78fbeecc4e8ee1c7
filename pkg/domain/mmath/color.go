// 指示: miu200521358
package mmath

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color はRGBA色 (各成分 0.0-1.0) を表す。
type Color struct {
	R float64
	G float64
	B float64
	A float64
}

// ParseHexColor は "RRGGBB" / "RRGGBBAA" (先頭 # 任意) を解析する。
func ParseHexColor(text string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(text), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("色指定の桁数が不正です: %q", text)
	}
	if len(hex) == 6 {
		hex += "FF"
	}
	values := [4]float64{}
	for i := range values {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("色指定が16進数ではありません: %q: %w", text, err)
		}
		values[i] = float64(v) / 255.0
	}
	return Color{R: values[0], G: values[1], B: values[2], A: values[3]}, nil
}

// Hex は "RRGGBBAA" 形式の文字列を返す。
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X%02X", toByte(c.R), toByte(c.G), toByte(c.B), toByte(c.A))
}

// String は色の文字列表現を返す。
func (c Color) String() string {
	return "#" + c.Hex()
}

// toByte は 0.0-1.0 の成分を 0-255 へ変換する。
func toByte(v float64) uint8 {
	return uint8(math.Round(math.Min(math.Max(v, 0), 1) * 255))
}
