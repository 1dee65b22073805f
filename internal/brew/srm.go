package brew

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ContrastThreshold is the perceived luminance above which dark text is used.
const ContrastThreshold = 140

const (
	DarkText  = "#000000"
	LightText = "#FFFFFF"
)

// srmColors maps the SRM beer color scale to its display color.
var srmColors = map[int]string{
	1: "#FFE699", 2: "#FFE07A", 3: "#FFD865", 4: "#FECF4F", 5: "#FDC53C",
	6: "#FBBC2C", 7: "#F8B320", 8: "#F6AC17", 9: "#F4A912", 10: "#F2A60D",
	11: "#E58500", 12: "#D77200", 13: "#CB6200", 14: "#C35900", 15: "#BB5100",
	16: "#B54C00", 17: "#B04500", 18: "#A63E00", 19: "#A13700", 20: "#9B3200",
	21: "#952D00", 22: "#8E2900", 23: "#882300", 24: "#821E00", 25: "#7B1A00",
	26: "#771900", 27: "#701400", 28: "#6A0E00", 29: "#660D00", 30: "#5E0B00",
	31: "#5A0A02", 32: "#560A05", 33: "#520907", 34: "#4C0505", 35: "#470606",
	36: "#440607", 37: "#3F0708", 38: "#3B0607", 39: "#3A070B", 40: "#36080A",
}

// SRMColor returns the display color for an SRM value.
func SRMColor(srm int) (string, bool) {
	hex, ok := srmColors[srm]
	return hex, ok
}

// SRMScale returns the SRM values that have a display color, ascending.
func SRMScale() []int {
	out := make([]int, 0, len(srmColors))
	for i := 1; i <= len(srmColors); i++ {
		if _, ok := srmColors[i]; ok {
			out = append(out, i)
		}
	}
	return out
}

// Luminance returns the perceived brightness (0-255) of a #RRGGBB color.
func Luminance(hex string) (float64, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, fmt.Errorf("parse color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return 0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b), nil
}

// ContrastText picks black or white text for legibility on the given
// background. Unparseable colors get light text.
func ContrastText(hex string) string {
	lum, err := Luminance(hex)
	if err != nil {
		return LightText
	}
	if lum > ContrastThreshold {
		return DarkText
	}
	return LightText
}
