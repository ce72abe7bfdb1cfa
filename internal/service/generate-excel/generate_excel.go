package generate_excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"salary-calculator/internal/storage"
)

const (
	ReportSheet   = "Заплати"
	TemplateSheet = "Данни"
)

// ReportHeaders - колонки отчёта в фиксированном порядке
// (Month, Year, Location, Name, Salary, Global Turnover, Personal Turnover,
// Coef. General, Coef. Personal, Vouchers, Target Bonus, Bruto, Bonus).
var ReportHeaders = []string{
	"Месец", "Година", "Обект", "Име", "Основна заплата", "Общ оборот", "Собствен оборот",
	"Коеф. общ", "Коеф. собствен", "Ваучери", "Бонус таргет", "Бруто", "Бонус",
}

var reportWidths = []float64{12, 8, 30, 20, 15, 15, 15, 12, 14, 12, 12, 12, 12}

var TemplateHeaders = []string{"Име", "Личен оборот", "Общ оборот"}

var templateWidths = []float64{25, 15, 15}

type GenerateExcelService struct {
	prefix string
}

func NewGenerateService(prefix string) *GenerateExcelService {
	if prefix == "" {
		prefix = "AutoGrand"
	}
	return &GenerateExcelService{prefix: prefix}
}

// ReportFileName: AutoGrand_<город>_<месяц>_<год>.xlsx, без города - AutoGrand_AutoGrand_...
func (g *GenerateExcelService) ReportFileName(city, month string, year int) string {
	if city == "" {
		city = g.prefix
	}
	return fmt.Sprintf("%s_%s_%s_%d.xlsx", g.prefix, city, month, year)
}

func (g *GenerateExcelService) TemplateFileName(city string) string {
	if city == "" {
		city = "Шаблон"
	}
	return fmt.Sprintf("%s_%s_Шаблон.xlsx", g.prefix, city)
}

// GenerateExcel строит книгу с одной строкой на результат.
func (g *GenerateExcelService) GenerateExcel(results []storage.CalculationResult) ([]byte, error) {
	const op = "service.generate_excel.GenerateExcel"

	rows := make([][]interface{}, 0, len(results))
	for _, r := range results {
		rows = append(rows, []interface{}{
			r.Month,
			r.Year,
			r.LocationName,
			r.Name,
			r.Salary,
			r.GlobalTurnover,
			r.PersonalTurnover,
			r.CoefGeneral,
			r.CoefPersonal,
			r.Vouchers,
			r.TargetBonus,
			r.Bruto,
			r.Bonus,
		})
	}

	data, err := g.build(ReportSheet, ReportHeaders, reportWidths, rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return data, nil
}

// GenerateTemplate - шаблон для импорта: имена дилеров, обороты заполняет пользователь,
// или два примера, если дилеров нет.
func (g *GenerateExcelService) GenerateTemplate(dealers []storage.Dealer) ([]byte, error) {
	const op = "service.generate_excel.GenerateTemplate"

	var rows [][]interface{}
	if len(dealers) == 0 {
		rows = [][]interface{}{
			{"Пример Иванов", 27582, 122000},
			{"Пример Петров", 31200, 122000},
		}
	}
	for _, d := range dealers {
		rows = append(rows, []interface{}{d.Name})
	}

	data, err := g.build(TemplateSheet, TemplateHeaders, templateWidths, rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return data, nil
}

func (g *GenerateExcelService) build(sheet string, headers []string, widths []float64, rows [][]interface{}) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	// Жирная шапка
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	for i, name := range headers {
		if err := f.SetCellValue(sheet, cellName(i+1, 1), name); err != nil {
			return nil, fmt.Errorf("header %s: %w", name, err)
		}
	}
	if err := f.SetCellStyle(sheet, "A1", cellName(len(headers), 1), headerStyle); err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	for i, row := range rows {
		if err := f.SetSheetRow(sheet, cellName(1, i+2), &row); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
	}

	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return nil, fmt.Errorf("col width %s: %w", col, err)
		}
	}

	// Закрепляем первую строку
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("panes: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
