package payroll

import (
	"math"

	"github.com/shopspring/decimal"
	"salary-calculator/internal/storage"
)

var hundred = decimal.NewFromInt(100)

// Итоги и процент таргета считаются в decimal, чтобы сумма по строкам не накапливала
// ошибку float64. Сами строки округляются через Round2.
func round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

// dec переводит float64 в decimal. NaN и Inf дают ноль: decimal.NewFromFloat на них паникует.
func dec(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

// Target - состояние таргета для плашки о достигнутом таргете.
type Target struct {
	Configured bool    `json:"configured"`
	Reached    bool    `json:"reached"`
	Percentage float64 `json:"percentage"` // округлено до 0.1
	Remaining  float64 `json:"remaining"`  // сколько не хватает до таргета
}

func TargetStatus(globalTurnover, target float64) Target {
	if target <= 0 {
		return Target{}
	}

	percentage := dec(globalTurnover).Div(dec(target)).Mul(hundred)
	st := Target{
		Configured: true,
		Reached:    globalTurnover/target*100 >= 100, // та же граница, что в TargetBonus
	}
	st.Percentage, _ = percentage.Round(1).Float64()
	if !st.Reached {
		st.Remaining = round2(dec(target).Sub(dec(globalTurnover)))
	}

	return st
}

type Summary struct {
	Dealers     int     `json:"dealers"`
	Salary      float64 `json:"salary"`
	Vouchers    float64 `json:"vouchers"`
	TargetBonus float64 `json:"targetBonus"`
	Bruto       float64 `json:"bruto"`
	Bonus       float64 `json:"bonus"`
}

func Totals(results []storage.CalculationResult) Summary {
	var salary, vouchers, targetBonus, bruto, bonus decimal.Decimal

	for _, r := range results {
		salary = salary.Add(dec(r.Salary))
		vouchers = vouchers.Add(dec(r.Vouchers))
		targetBonus = targetBonus.Add(dec(r.TargetBonus))
		bruto = bruto.Add(dec(r.Bruto))
		bonus = bonus.Add(dec(r.Bonus))
	}

	return Summary{
		Dealers:     len(results),
		Salary:      round2(salary),
		Vouchers:    round2(vouchers),
		TargetBonus: round2(targetBonus),
		Bruto:       round2(bruto),
		Bonus:       round2(bonus),
	}
}
