package main

import (
	"school-meal-api/neis"
	"school-meal-api/nutrition"
)

type MealResponse struct {
	MealName   string `json:"meal_name"`
	SchoolName string `json:"school_name"`
	Dishes     string `json:"dishes"`
	// Null when nothing could be parsed from NTR_INFO and CAL_INFO.
	Nutrition nutrition.Entries `json:"nutrition"`
}

type MealsResponse struct {
	Date  string         `json:"date"`
	Meals []MealResponse `json:"meals"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func newMealsResponse(date string, records []neis.MealRecord) MealsResponse {
	resp := MealsResponse{Date: date, Meals: make([]MealResponse, 0, len(records))}
	for _, r := range records {
		entries, _ := nutrition.Parse(r.NutritionRaw, r.CalorieRaw)
		resp.Meals = append(resp.Meals, MealResponse{
			MealName:   r.MealName,
			SchoolName: r.SchoolName,
			Dishes:     r.Dishes,
			Nutrition:  entries,
		})
	}
	return resp
}
