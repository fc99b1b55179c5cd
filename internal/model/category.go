package model

// SurveyCategories 固定的16个市场调研类目
var SurveyCategories = []string{
	"Automobile",
	"Food & Beverage",
	"Ethnicity",
	"Business & Occupation",
	"Healthcare Consumer",
	"Healthcare Professional",
	"Mobile",
	"Smoking",
	"Household",
	"Education",
	"Electronic",
	"Gaming",
	"Mother & Baby",
	"Media",
	"Travel",
	"Hobbies & Interests",
}

// ValidCategory 检查类目是否在固定类目集合内
func ValidCategory(category string) bool {
	for _, c := range SurveyCategories {
		if c == category {
			return true
		}
	}
	return false
}
