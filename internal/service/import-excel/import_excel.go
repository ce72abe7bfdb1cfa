package import_excel

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"salary-calculator/internal/storage"
)

var ErrNoSheets = errors.New("workbook has no sheets")

// Сообщения для пользователя.
const (
	MsgEmptyFile        = "Файлът е празен!"
	MsgNoNameColumn     = `Не е намерена колона с имена! Използвай колона "Име".`
	MsgNoPersonalColumn = `Не е намерена колона за личен оборот! Използвай колона "Личен оборот".`
)

type Field string

const (
	FieldName     Field = "name"
	FieldPersonal Field = "personal"
	FieldGlobal   Field = "global"
)

// Synonyms: поле -> подстроки, по которым узнаётся заголовок колонки (в нижнем регистре).
type Synonyms map[Field][]string

var DefaultSynonyms = Synonyms{
	FieldName:     {"име", "name", "дилър", "dealer"},
	FieldPersonal: {"личен", "собствен", "personal"},
	FieldGlobal:   {"общ", "total", "global"},
}

// Column возвращает первый заголовок (слева направо), содержащий один из синонимов поля.
func (s Synonyms) Column(headers []string, field Field) (string, bool) {
	for _, h := range headers {
		lower := strings.ToLower(h)
		for _, syn := range s[field] {
			if strings.Contains(lower, strings.ToLower(syn)) {
				return h, true
			}
		}
	}
	return "", false
}

type Row map[string]string

// Sheet - первый лист книги: заголовки в порядке колонок и строки данных.
type Sheet struct {
	Headers []string
	Rows    []Row
}

type Result struct {
	Success           bool              `json:"success"`
	Matched           int               `json:"matched"`
	NotFound          []string          `json:"notFound"`
	GlobalTurnover    float64           `json:"globalTurnover,omitempty"`
	HasGlobalTurnover bool              `json:"hasGlobalTurnover"`
	Turnovers         map[int64]float64 `json:"turnovers"`
	Error             string            `json:"error,omitempty"`
}

func failed(msg string) Result {
	return Result{NotFound: []string{}, Turnovers: map[int64]float64{}, Error: msg}
}

// Parse читает первый лист xlsx. Первая строка - заголовки.
func Parse(r io.Reader) (Sheet, error) {
	const op = "service.import_excel.Parse"

	f, err := excelize.OpenReader(r)
	if err != nil {
		return Sheet{}, fmt.Errorf("%s: open workbook: %w", op, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Sheet{}, fmt.Errorf("%s: %w", op, ErrNoSheets)
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return Sheet{}, fmt.Errorf("%s: read sheet %s: %w", op, sheets[0], err)
	}

	return FromRows(rows), nil
}

// FromRows строит Sheet из сырых строк; пустые строки пропускаются.
func FromRows(rows [][]string) Sheet {
	var sheet Sheet
	if len(rows) == 0 {
		return sheet
	}

	header := rows[0]
	for _, h := range header {
		sheet.Headers = append(sheet.Headers, strings.TrimSpace(h))
	}

	for _, cells := range rows[1:] {
		row := make(Row)
		for i, cell := range cells {
			if i >= len(sheet.Headers) || sheet.Headers[i] == "" {
				continue
			}
			if v := strings.TrimSpace(cell); v != "" {
				row[sheet.Headers[i]] = v
			}
		}
		if len(row) > 0 {
			sheet.Rows = append(sheet.Rows, row)
		}
	}

	return sheet
}

// Process сопоставляет строки листа с дилерами объекта по имени
// (без учёта регистра и пробелов по краям) и собирает личные обороты.
func Process(sheet Sheet, dealers []storage.Dealer, synonyms Synonyms) Result {
	if len(sheet.Rows) == 0 {
		return failed(MsgEmptyFile)
	}

	nameKey, ok := synonyms.Column(sheet.Headers, FieldName)
	if !ok {
		return failed(MsgNoNameColumn)
	}
	personalKey, ok := synonyms.Column(sheet.Headers, FieldPersonal)
	if !ok {
		return failed(MsgNoPersonalColumn)
	}
	globalKey, hasGlobal := synonyms.Column(sheet.Headers, FieldGlobal)

	byName := make(map[string]storage.Dealer, len(dealers))
	for _, d := range dealers {
		key := strings.ToLower(strings.TrimSpace(d.Name))
		if _, dup := byName[key]; !dup {
			byName[key] = d
		}
	}

	res := Result{
		Success:   true,
		NotFound:  []string{},
		Turnovers: make(map[int64]float64),
	}

	for _, row := range sheet.Rows {
		// общий оборот берём из первой строки, где он есть
		if hasGlobal && !res.HasGlobalTurnover {
			if v, ok := ParseNumber(row[globalKey]); ok && v != 0 {
				res.GlobalTurnover = v
				res.HasGlobalTurnover = true
			}
		}

		name := strings.TrimSpace(row[nameKey])
		if name == "" {
			continue
		}

		dealer, found := byName[strings.ToLower(name)]
		if !found {
			res.NotFound = append(res.NotFound, name)
			continue
		}

		turnover, _ := ParseNumber(row[personalKey])
		res.Turnovers[dealer.ID] = turnover
		res.Matched++
	}

	return res
}

// ParseNumber разбирает число из ячейки: "27582", "27582,50", "27 582.50", "1,234.5 лв".
// Одна запятая без точки - десятичный разделитель (болгарский формат), поэтому "1,234" = 1.234.
// Берётся самый длинный числовой префикс; пустая строка или мусор - (0, false).
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer(" ", "", "\u00a0", "").Replace(s)
	if s == "" {
		return 0, false
	}

	if strings.Contains(s, ",") {
		if strings.Contains(s, ".") {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.ReplaceAll(s, ",", ".")
		}
	}

	end := 0
	for i, c := range s {
		if (c >= '0' && c <= '9') || c == '.' || c == 'e' || c == 'E' || ((c == '-' || c == '+') && (i == 0 || s[i-1] == 'e' || s[i-1] == 'E')) {
			end = i + 1
			continue
		}
		break
	}

	for ; end > 0; end-- {
		if v, err := strconv.ParseFloat(s[:end], 64); err == nil {
			return v, true
		}
	}

	return 0, false
}
