package model

// MeasurementKeys lists the known physical tests in display order.
var MeasurementKeys = []string{
	"heightNoShoes", "heightShoes", "wingspan", "reach",
	"maxVertical", "noStepVertical", "weight", "bodyFat",
	"handLength", "handWidth", "agility", "sprint",
	"shuttleLeft", "shuttleRight", "shuttleBest",
}

var measurementLabels = map[string]string{
	"heightNoShoes":  "Height (No Shoes)",
	"heightShoes":    "Height (With Shoes)",
	"wingspan":       "Wingspan",
	"reach":          "Standing Reach",
	"maxVertical":    "Max Vertical",
	"noStepVertical": "No Step Vertical",
	"weight":         "Weight",
	"bodyFat":        "Body Fat %",
	"handLength":     "Hand Length",
	"handWidth":      "Hand Width",
	"agility":        "Agility",
	"sprint":         "Sprint Time",
	"shuttleLeft":    "Shuttle Left",
	"shuttleRight":   "Shuttle Right",
	"shuttleBest":    "Shuttle Best",
}

// MeasurementLabel returns the display label for a test; unknown tests are
// labelled with their key.
func MeasurementLabel(key string) string {
	if l, ok := measurementLabels[key]; ok {
		return l
	}
	return key
}

// MeasurementNames returns the known tests followed by any other tests
// present in ms, sorted.
func MeasurementNames(ms ...*Measurement) []string {
	names := append([]string(nil), MeasurementKeys...)
	extra := map[string]struct{}{}
	for _, m := range ms {
		if m == nil {
			continue
		}
		for k := range m.Values {
			if _, known := measurementLabels[k]; !known {
				extra[k] = struct{}{}
			}
		}
	}
	return append(names, sortedKeys(extra)...)
}
