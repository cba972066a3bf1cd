package model

import (
	"strconv"
	"strings"
)

// iconMapping maps RBB "nww" weather codes to amcharts weather icon names
var iconMapping = map[string]string{
	"100000": "day",
	"110000": "cloudy-day-1",
	"110100": "snowy-1",
	"110300": "snowy-1",
	"111000": "rainy-2",
	"111100": "snowy-2",
	"113000": "rainy-2",
	"113300": "snowy-2",
	"120000": "cloudy-day-1",
	"120100": "snowy-2",
	"120200": "snowy-3",
	"120300": "snowy-2",
	"121000": "rainy-2",
	"121100": "snowy-1",
	"122000": "rainy-3",
	"122200": "snowy-3",
	"123000": "rainy-1",
	"123300": "snowy-2",
	"200000": "night",
	"210000": "cloudy-night-1",
	"210100": "snowy-4",
	"210300": "snowy-5",
	"211000": "rainy-4",
	"211100": "snowy-5",
	"213000": "rainy-5",
	"213300": "snowy-4",
	"220000": "cloudy-night-1",
	"220100": "snowy-4",
	"220200": "snowy-6",
	"220300": "snowy-5",
	"221000": "rainy-4",
	"221100": "snowy-5",
	"222000": "rainy-6",
	"222200": "rainy-7",
	"223000": "rainy-5",
	"223300": "snowy-4",
	"320000": "cloudy",
	"320100": "snowy-4",
	"320200": "snowy-6",
	"320300": "snowy-5",
	"321000": "rainy-4",
	"321100": "snowy-5",
	"322000": "rainy-6",
	"322200": "rainy-7",
	"323000": "rainy-5",
	"323300": "snowy-4",
	"330000": "cloudy",
	"330100": "snowy-4",
	"330200": "snowy-6",
	"330300": "snowy-5",
	"331000": "rainy-4",
	"331100": "snowy-5",
	"332000": "rainy-6",
	"332200": "rainy-7",
	"333000": "rainy-5",
	"333300": "snowy-4",
}

// IconName returns the icon name of an RBB weather code
func IconName(code string) (string, bool) {
	icon, ok := iconMapping[strings.TrimSpace(code)]
	return icon, ok
}

// windDirections are the upper bounds in degrees of each compass sector
var windDirections = []struct {
	maxDegrees float64
	key        string
}{
	{22, "N"},
	{67, "NE"},
	{112, "E"},
	{157, "SE"},
	{202, "S"},
	{247, "SW"},
	{292, "W"},
	{337, "NW"},
}

// WindDirectionKey returns the compass key (N, NE, ..., NW) of a wind direction in degrees,
// empty when degrees is not a number
func WindDirectionKey(degrees string) string {
	value, err := strconv.ParseFloat(strings.TrimSpace(degrees), 64)
	if err != nil {
		return ""
	}

	for _, direction := range windDirections {
		if value <= direction.maxDegrees {
			return direction.key
		}
	}
	return "N"
}
