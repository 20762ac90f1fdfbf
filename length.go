package texgen

import (
	"fmt"
	"strconv"
)

const cmInPixel = 96 / 2.54 // pixels per centimeter at 96 DPI

// Length is a measurement value, a number and units, for example: 5.1cm,
// 6em, 0.25\textwidth. It satisfies Content, so it can be passed directly
// to HSpace, VSpace and friends.
type Length struct {
	Value float32
	Unit  string
}

func Pt(value float32) Length { return Length{Value: value, Unit: "pt"} }
func Mm(value float32) Length { return Length{Value: value, Unit: "mm"} }
func Cm(value float32) Length { return Length{Value: value, Unit: "cm"} }
func In(value float32) Length { return Length{Value: value, Unit: "in"} }
func Ex(value float32) Length { return Length{Value: value, Unit: "ex"} }
func Em(value float32) Length { return Length{Value: value, Unit: "em"} }
func Px(value float32) Length { return Length{Value: value, Unit: "px"} }

func Percent(value float32) Length { return Length{Value: value, Unit: "%"} }

// TextWidth is a length relative to the width of the text area, for example
// TextWidth(0.25) renders as 0.25\textwidth.
func TextWidth(value float32) Length { return Length{Value: value, Unit: "\\textwidth"} }

func (l Length) String() string {
	return strconv.FormatFloat(float64(l.Value), 'f', -1, 32) + l.Unit
}

func (l Length) merge() string { return l.String() }

// Pixels converts the length to pixels at 96 DPI.
func (l Length) Pixels() (float32, error) {
	switch l.Unit {
	case "pt":
		return l.Value * cmInPixel / 28.4495, nil
	case "mm":
		return l.Value * cmInPixel / 10, nil
	case "cm":
		return l.Value * cmInPixel, nil
	case "in":
		return l.Value * cmInPixel * 2.54, nil
	case "ex":
		return l.Value * cmInPixel * 0.15132, nil
	case "em":
		return l.Value * cmInPixel * 0.35146, nil
	case "px":
		return l.Value, nil
	default:
		return 0, fmt.Errorf("measurement unit %#v is not supported", l.Unit)
	}
}
