package storage

type Dealer struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	LocationID   int64   `json:"locationId"`
	CoefGeneral  float64 `json:"coefGeneral"`  // коэффициент к общему обороту
	CoefPersonal float64 `json:"coefPersonal"` // коэффициент к личному обороту
}

// DealerMonthlyData - данные за один расчёт, не сохраняются.
type DealerMonthlyData struct {
	DealerID         int64   `json:"dealerId"`
	Salary           float64 `json:"salary"`
	PersonalTurnover float64 `json:"personalTurnover"`
	Vouchers         float64 `json:"vouchers"`
}

type CalculationResult struct {
	Name             string  `json:"name"`
	LocationName     string  `json:"locationName"`
	Month            string  `json:"month"`
	Year             int     `json:"year"`
	Salary           float64 `json:"salary"`
	GlobalTurnover   float64 `json:"globalTurnover"`
	PersonalTurnover float64 `json:"personalTurnover"`
	CoefGeneral      float64 `json:"coefGeneral"`
	CoefPersonal     float64 `json:"coefPersonal"`
	Vouchers         float64 `json:"vouchers"`
	TargetBonus      float64 `json:"targetBonus"`
	Bruto            float64 `json:"bruto"`
	Bonus            float64 `json:"bonus"`
}
