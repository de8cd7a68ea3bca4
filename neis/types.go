package neis

import "encoding/json"

// MealRecord is one served meal (breakfast, lunch or dinner) for a date.
type MealRecord struct {
	Date         string `json:"date"`
	SchoolName   string `json:"school_name"`
	MealName     string `json:"meal_name"`
	Dishes       string `json:"dishes"`
	NutritionRaw string `json:"nutrition_raw"`
	CalorieRaw   string `json:"calorie_raw"`
}

// Upstream wire format. A successful response looks like
//
//	{"mealServiceDietInfo":[{"head":[...]},{"row":[{...}]}]}
//
// and an empty one like {"RESULT":{"CODE":"INFO-200","MESSAGE":"..."}}.
type dietInfoResponse struct {
	DietInfo []json.RawMessage `json:"mealServiceDietInfo"`
	Result   *apiResult        `json:"RESULT"`
}

type apiResult struct {
	Code    string `json:"CODE"`
	Message string `json:"MESSAGE"`
}

type dietInfoHead struct {
	Head []struct {
		ListTotalCount int        `json:"list_total_count"`
		Result         *apiResult `json:"RESULT"`
	} `json:"head"`
}

type dietInfoRows struct {
	Rows *[]dietInfoRow `json:"row"`
}

type dietInfoRow struct {
	OfficeCode  string `json:"ATPT_OFCDC_SC_CODE"`
	SchoolCode  string `json:"SD_SCHUL_CODE"`
	SchoolName  string `json:"SCHUL_NM"`
	MealCode    string `json:"MMEAL_SC_CODE"`
	MealName    string `json:"MMEAL_SC_NM"`
	Date        string `json:"MLSV_YMD"`
	Dishes      string `json:"DDISH_NM"`
	Origin      string `json:"ORPLC_INFO"`
	CalorieInfo string `json:"CAL_INFO"`
	Nutrition   string `json:"NTR_INFO"`
}

const (
	resultOK     = "INFO-000"
	resultNoData = "INFO-200"
)
