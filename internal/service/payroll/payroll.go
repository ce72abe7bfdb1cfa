package payroll

import (
	"math"

	"salary-calculator/internal/lib/collate"
	"salary-calculator/internal/repository"
	"salary-calculator/internal/storage"
)

// UnknownLocation - название, когда объект дилера не найден.
const UnknownLocation = "Неизвестен"

// TargetBonusPerPoint - сумма за каждый процент над таргетом.
// Демо-правило из первой версии калькулятора, сохранено для совместимости.
const TargetBonusPerPoint = 0.5

// Round2 округляет до копейки как round(x*100)/100 над float64,
// половина - от нуля (и для отрицательных). NaN и Inf дают ноль.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*100) / 100
}

// TargetBonus: при target <= 0 бонуса нет. Иначе процент = gt/target*100,
// при >= 100 бонус = (процент - 100) * TargetBonusPerPoint, ниже 100 - ноль.
func TargetBonus(globalTurnover, target float64) float64 {
	if target <= 0 {
		return 0
	}

	percentage := globalTurnover / target * 100
	if percentage < 100 {
		return 0
	}

	return Round2((percentage - 100) * TargetBonusPerPoint)
}

// Bruto = зарплата + общий оборот*коэф. общий + личный оборот*коэф. личный + бонус за таргет.
func Bruto(salary, globalTurnover, personalTurnover, coefGeneral, coefPersonal, targetBonus float64) float64 {
	return Round2(salary + globalTurnover*coefGeneral + personalTurnover*coefPersonal + targetBonus)
}

// Bonus = бруто - зарплата - ваучеры. Может быть отрицательным.
func Bonus(bruto, salary, vouchers float64) float64 {
	return Round2(bruto - salary - vouchers)
}

func LocationLabel(locations []storage.Location, id int64) string {
	if loc, ok := repository.LocationByID(locations, id); ok {
		return loc.Label()
	}
	return UnknownLocation
}

func ResultForDealer(dealer storage.Dealer, data storage.DealerMonthlyData, globalTurnover, target float64, month string, year int, locations []storage.Location) storage.CalculationResult {
	targetBonus := TargetBonus(globalTurnover, target)
	bruto := Bruto(data.Salary, globalTurnover, data.PersonalTurnover, dealer.CoefGeneral, dealer.CoefPersonal, targetBonus)

	return storage.CalculationResult{
		Name:             dealer.Name,
		LocationName:     LocationLabel(locations, dealer.LocationID),
		Month:            month,
		Year:             year,
		Salary:           data.Salary,
		GlobalTurnover:   globalTurnover,
		PersonalTurnover: data.PersonalTurnover,
		CoefGeneral:      dealer.CoefGeneral,
		CoefPersonal:     dealer.CoefPersonal,
		Vouchers:         data.Vouchers,
		TargetBonus:      targetBonus,
		Bruto:            bruto,
		Bonus:            Bonus(bruto, data.Salary, data.Vouchers),
	}
}

// ResultsForRoster считает всех дилеров, для которых есть данные за месяц; остальные пропускаются.
// Результат отсортирован по названию объекта, внутри объекта - в порядке dealers.
func ResultsForRoster(dealers []storage.Dealer, dataByDealerID map[int64]storage.DealerMonthlyData, globalTurnover, target float64, month string, year int, locations []storage.Location) []storage.CalculationResult {
	results := make([]storage.CalculationResult, 0, len(dealers))

	for _, dealer := range dealers {
		data, ok := dataByDealerID[dealer.ID]
		if !ok {
			continue
		}
		results = append(results, ResultForDealer(dealer, data, globalTurnover, target, month, year, locations))
	}

	collate.SortStableBy(collate.Default, results, func(r storage.CalculationResult) string {
		return r.LocationName
	})

	return results
}
