package utils

import "fmt"

// GenerateTimeGrid returns the clinic's bookable times as HH:MM strings,
// stepping stepMinutes from openHour up to (not including) closeHour.
// GenerateTimeGrid(9, 17, 30) yields "09:00" through "16:30".
func GenerateTimeGrid(openHour, closeHour, stepMinutes int) []string {
	if stepMinutes <= 0 || closeHour <= openHour {
		return nil
	}
	var grid []string
	for m := openHour * 60; m < closeHour*60; m += stepMinutes {
		grid = append(grid, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return grid
}
