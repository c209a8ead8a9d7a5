package dialect

import "strings"

var mealMasterPrefixes = []string{"-----", "MMMMM", "- -----"}

var mealMasterSignatures = []string{"Meal-Master", "Now You're Cooking!"}

var mealMasterBanners = []string{
	"MMMMM----- Recipe via Meal-Master (tm)",
	"MMMMM----- Recipe via MealMaster",
	"---------- Recipe via Meal-Master (tm)",
	"---------- Recipe via MealMaster",
	"----- Recipe via Meal-Master",
	"- ----- Recipe via Meal-Master",
	"MMMMM---- Meal-Master",
	"----- Meal-Master",
}

var mealMasterEnds = []string{"MMMMM", "-----", "- -----", "- - - - -"}

// IsMealMasterStart reports whether line opens a Meal-Master recipe. Quoted
// lines (leading '>') never match.
func IsMealMasterStart(line string) bool {
	t := strings.TrimLeft(line, " \t")
	if t == "" || t[0] == '>' {
		return false
	}
	for _, prefix := range mealMasterPrefixes {
		if !strings.HasPrefix(t, prefix) {
			continue
		}
		for _, sig := range mealMasterSignatures {
			if strings.Contains(t, sig) {
				return true
			}
		}
	}
	for _, banner := range mealMasterBanners {
		if len(t) >= len(banner) && strings.EqualFold(t[:len(banner)], banner) {
			return true
		}
	}
	return false
}

// IsMealMasterEnd reports whether the trimmed line is exactly one of the
// Meal-Master end markers.
func IsMealMasterEnd(line string) bool {
	t := strings.TrimSpace(line)
	for _, marker := range mealMasterEnds {
		if len(t) == len(marker) && strings.EqualFold(t, marker) {
			return true
		}
	}
	return false
}
