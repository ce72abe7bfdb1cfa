package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"salary-calculator/internal/repository"
	import_excel "salary-calculator/internal/service/import-excel"
	"salary-calculator/internal/service/payroll"
	"salary-calculator/internal/storage"
)

type Repository interface {
	LoadAll(ctx context.Context) ([]storage.Location, []storage.Dealer, error)
	AddLocation(ctx context.Context, current []storage.Location, name, city, address string, typ storage.LocationType) []storage.Location
	RemoveLocation(ctx context.Context, current []storage.Location, id int64) []storage.Location
	AddDealer(ctx context.Context, current []storage.Dealer, name string, locationID int64, coefGeneral, coefPersonal float64) []storage.Dealer
	RemoveDealer(ctx context.Context, current []storage.Dealer, id int64) []storage.Dealer
	RemoveDealersByLocation(ctx context.Context, current []storage.Dealer, locationID int64) ([]storage.Dealer, int)
	ClearAllData(ctx context.Context)
}

type Exporter interface {
	GenerateExcel(results []storage.CalculationResult) ([]byte, error)
	GenerateTemplate(dealers []storage.Dealer) ([]byte, error)
	ReportFileName(city, month string, year int) string
	TemplateFileName(city string) string
}

// CascadePolicy - что делать с дилерами при удалении объекта.
type CascadePolicy int

const (
	Reject  CascadePolicy = iota // отказать, если у объекта есть дилеры
	Cascade                      // удалить дилеров, потом объект
)

type Input struct {
	GlobalTurnover float64                     `json:"globalTurnover"`
	Target         float64                     `json:"target"`
	Month          string                      `json:"month"`
	Year           int                         `json:"year"`
	Monthly        []storage.DealerMonthlyData `json:"monthly"`
}

type Calculation struct {
	Results []storage.CalculationResult `json:"results"`
	Target  payroll.Target              `json:"target"`
	Summary payroll.Summary             `json:"summary"`
}

type View struct {
	Locations []storage.Location          `json:"locations"`
	Selected  *storage.Location           `json:"selected"`
	Dealers   []storage.Dealer            `json:"dealers"`
	Results   []storage.CalculationResult `json:"results"`
	Summary   payroll.Summary             `json:"summary"`
}

// Session держит коллекции в памяти и состояние выбора, и проводит команды
// через Repository и payroll. Все команды сериализованы mu; импорт и расчёт
// дополнительно помечают сессию занятой, параллельный запуск получает ErrBusy.
type Session struct {
	log      *slog.Logger
	repo     Repository
	excel    Exporter
	synonyms import_excel.Synonyms

	mu        sync.Mutex
	busy      atomic.Bool
	locations []storage.Location
	dealers   []storage.Dealer
	state     State
}

func New(ctx context.Context, log *slog.Logger, repo Repository, excel Exporter) (*Session, error) {
	const op = "service.session.New"

	locations, dealers, err := repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("data loaded", slog.Int("locations", len(locations)), slog.Int("dealers", len(dealers)))

	return &Session{
		log:       log,
		repo:      repo,
		excel:     excel,
		synonyms:  import_excel.DefaultSynonyms,
		locations: locations,
		dealers:   dealers,
	}, nil
}

// WithSynonyms подменяет таблицу синонимов колонок для импорта.
func (s *Session) WithSynonyms(synonyms import_excel.Synonyms) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.synonyms = synonyms
	return s
}

func (s *Session) begin() (func(), error) {
	if !s.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	return func() { s.busy.Store(false) }, nil
}

// ==================== READ ====================

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{SelectedLocationID: s.state.SelectedLocationID, Results: slices.Clone(s.state.Results)}
}

func (s *Session) Locations() []storage.Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.locations)
}

// Dealers - дилеры выбранного объекта; без выбора - пусто.
func (s *Session) Dealers() []storage.Dealer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rosterLocked()
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		Locations: slices.Clone(s.locations),
		Dealers:   s.rosterLocked(),
		Results:   slices.Clone(s.state.Results),
		Summary:   payroll.Totals(s.state.Results),
	}
	if loc, ok := repository.LocationByID(s.locations, s.state.SelectedLocationID); ok {
		v.Selected = &loc
	}
	if v.Results == nil {
		v.Results = []storage.CalculationResult{}
	}

	return v
}

func (s *Session) rosterLocked() []storage.Dealer {
	if !s.state.HasSelection() {
		return []storage.Dealer{}
	}
	return repository.DealersByLocation(s.dealers, s.state.SelectedLocationID)
}

// ==================== LOCATIONS ====================

// SelectLocation выбирает объект; 0 снимает выбор. Результаты сбрасываются.
func (s *Session) SelectLocation(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == 0 {
		s.state = State{}
		return nil
	}

	loc, ok := repository.LocationByID(s.locations, id)
	if !ok {
		return fmt.Errorf("service.session.SelectLocation: id=%d: %w", id, ErrLocationNotFound)
	}

	s.state = s.state.Select(id)
	s.log.Info("location selected", slog.Int64("id", id), slog.String("location", loc.Label()))

	return nil
}

func (s *Session) AddLocation(ctx context.Context, name, city, address string, typ storage.LocationType) (storage.Location, error) {
	name, city, address = strings.TrimSpace(name), strings.TrimSpace(city), strings.TrimSpace(address)

	if name == "" {
		return storage.Location{}, invalid("name", "Моля, въведи име на обекта!")
	}
	if city == "" {
		return storage.Location{}, invalid("city", "Моля, въведи град!")
	}
	if !typ.Valid() {
		return storage.Location{}, invalid("type", "Моля, избери тип на обекта!")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.locations = s.repo.AddLocation(ctx, s.locations, name, city, address, typ)
	added := s.locations[len(s.locations)-1]

	s.log.Info("location added", slog.Int64("id", added.ID), slog.String("location", added.Label()))

	return added, nil
}

// RemoveLocation удаляет объект. С Reject и дилерами - ErrLocationHasDealers без изменений;
// с Cascade сначала удаляются дилеры объекта. Возвращает число удалённых дилеров.
func (s *Session) RemoveLocation(ctx context.Context, id int64, policy CascadePolicy) (int, error) {
	const op = "service.session.RemoveLocation"

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := repository.LocationByID(s.locations, id); !ok {
		return 0, fmt.Errorf("%s: id=%d: %w", op, id, ErrLocationNotFound)
	}

	removed := 0
	if n := len(repository.DealersByLocation(s.dealers, id)); n > 0 {
		if policy != Cascade {
			return 0, fmt.Errorf("%s: id=%d has %d dealers: %w", op, id, n, ErrLocationHasDealers)
		}
		s.dealers, removed = s.repo.RemoveDealersByLocation(ctx, s.dealers, id)
	}

	s.locations = s.repo.RemoveLocation(ctx, s.locations, id)
	s.state = s.state.LocationRemoved(id)

	s.log.Info("location removed", slog.Int64("id", id), slog.Int("dealers_removed", removed))

	return removed, nil
}

// ==================== DEALERS ====================

func (s *Session) AddDealer(ctx context.Context, name string, coefGeneral, coefPersonal float64) (storage.Dealer, error) {
	name = strings.TrimSpace(name)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.HasSelection() {
		return storage.Dealer{}, ErrNoLocationSelected
	}
	if name == "" {
		return storage.Dealer{}, invalid("name", "Моля, въведи име на дилъра!")
	}
	if !validCoef(coefGeneral) {
		return storage.Dealer{}, invalid("coefGeneral", "Моля, въведи валиден коефициент за общ оборот!")
	}
	if !validCoef(coefPersonal) {
		return storage.Dealer{}, invalid("coefPersonal", "Моля, въведи валиден коефициент за собствен оборот!")
	}

	s.dealers = s.repo.AddDealer(ctx, s.dealers, name, s.state.SelectedLocationID, coefGeneral, coefPersonal)
	s.state = s.state.Invalidate()
	added := s.dealers[len(s.dealers)-1]

	s.log.Info("dealer added", slog.Int64("id", added.ID), slog.String("name", added.Name), slog.Int64("location_id", added.LocationID))

	return added, nil
}

func (s *Session) RemoveDealer(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !slices.ContainsFunc(s.dealers, func(d storage.Dealer) bool { return d.ID == id }) {
		return fmt.Errorf("service.session.RemoveDealer: id=%d: %w", id, ErrDealerNotFound)
	}

	s.dealers = s.repo.RemoveDealer(ctx, s.dealers, id)
	s.state = s.state.Invalidate()

	s.log.Info("dealer removed", slog.Int64("id", id))

	return nil
}

// ==================== CALCULATION ====================

// Calculate считает зарплаты дилеров выбранного объекта. При любой ошибке
// проверки прежние результаты не трогаются.
func (s *Session) Calculate(in Input) (Calculation, error) {
	done, err := s.begin()
	if err != nil {
		return Calculation{}, err
	}
	defer done()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.HasSelection() {
		return Calculation{}, ErrNoLocationSelected
	}
	if !finite(in.GlobalTurnover) || in.GlobalTurnover <= 0 {
		return Calculation{}, invalid("globalTurnover", "Моля, въведи общия оборот!")
	}
	if !finite(in.Target) {
		return Calculation{}, invalid("target", "Моля, въведи валиден таргет!")
	}
	if in.Year == 0 {
		return Calculation{}, invalid("year", "Моля, въведи година!")
	}
	if strings.TrimSpace(in.Month) == "" {
		return Calculation{}, invalid("month", "Моля, избери месец!")
	}

	roster := s.rosterLocked()
	if len(roster) == 0 {
		return Calculation{}, invalid("dealers", "Няма добавени дилъри за този обект!")
	}

	monthly := make(map[int64]storage.DealerMonthlyData, len(in.Monthly))
	for _, m := range in.Monthly {
		if !finite(m.Salary) || !finite(m.PersonalTurnover) || !finite(m.Vouchers) {
			return Calculation{}, invalid("monthly", "Моля, въведи валидни числа за заплата, оборот и ваучери!")
		}
		monthly[m.DealerID] = m
	}

	loc, _ := repository.LocationByID(s.locations, s.state.SelectedLocationID)
	results := payroll.ResultsForRoster(roster, monthly, in.GlobalTurnover, in.Target, in.Month, in.Year, []storage.Location{loc})

	s.state = s.state.WithResults(results)

	s.log.Info("calculation done",
		slog.String("location", loc.Label()),
		slog.String("period", fmt.Sprintf("%s %d", in.Month, in.Year)),
		slog.Int("results", len(results)),
	)

	return Calculation{
		Results: slices.Clone(results),
		Target:  payroll.TargetStatus(in.GlobalTurnover, in.Target),
		Summary: payroll.Totals(results),
	}, nil
}

// ClearInputs сбрасывает результаты выбранного объекта.
func (s *Session) ClearInputs() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.HasSelection() {
		return ErrNoLocationSelected
	}
	s.state = s.state.Invalidate()

	return nil
}

// ==================== EXCEL ====================

// Export возвращает xlsx с последними результатами и имя файла.
func (s *Session) Export() ([]byte, string, error) {
	const op = "service.session.Export"

	s.mu.Lock()
	results := slices.Clone(s.state.Results)
	loc, _ := repository.LocationByID(s.locations, s.state.SelectedLocationID)
	s.mu.Unlock()

	if len(results) == 0 {
		return nil, "", ErrNoResults
	}

	data, err := s.excel.GenerateExcel(results)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	fileName := s.excel.ReportFileName(loc.City, results[0].Month, results[0].Year)
	s.log.Info("report exported", slog.String("file", fileName), slog.Int("rows", len(results)))

	return data, fileName, nil
}

// Template - шаблон импорта с именами дилеров выбранного объекта.
func (s *Session) Template() ([]byte, string, error) {
	const op = "service.session.Template"

	s.mu.Lock()
	if !s.state.HasSelection() {
		s.mu.Unlock()
		return nil, "", ErrNoLocationSelected
	}
	roster := s.rosterLocked()
	loc, _ := repository.LocationByID(s.locations, s.state.SelectedLocationID)
	s.mu.Unlock()

	data, err := s.excel.GenerateTemplate(roster)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	return data, s.excel.TemplateFileName(loc.City), nil
}

// ImportTurnovers читает xlsx и сопоставляет строки с дилерами выбранного объекта.
// Ошибки формата листа приходят в Result; нечитаемый файл - ValidationError.
func (s *Session) ImportTurnovers(r io.Reader) (import_excel.Result, error) {
	const op = "service.session.ImportTurnovers"

	done, err := s.begin()
	if err != nil {
		return import_excel.Result{}, err
	}
	defer done()

	s.mu.Lock()
	selected := s.state.HasSelection()
	roster := s.rosterLocked()
	synonyms := s.synonyms
	s.mu.Unlock()

	if !selected {
		return import_excel.Result{}, ErrNoLocationSelected
	}
	if len(roster) == 0 {
		return import_excel.Result{}, invalid("dealers", "Няма добавени дилъри за този обект! Първо добави дилъри.")
	}

	sheet, err := import_excel.Parse(r)
	if err != nil {
		s.log.Warn("unreadable workbook", slog.String("op", op), slog.String("error", err.Error()))
		return import_excel.Result{}, invalid("file", "Файлът не може да бъде прочетен като Excel!")
	}

	res := import_excel.Process(sheet, roster, synonyms)
	if res.Success {
		s.log.Info("turnovers imported", slog.Int("matched", res.Matched), slog.Any("not_found", res.NotFound))
	} else {
		s.log.Warn("import rejected", slog.String("reason", res.Error))
	}

	return res, nil
}

// ==================== RESET ====================

// Reset стирает всё и загружает объекты по умолчанию.
func (s *Session) Reset(ctx context.Context) error {
	const op = "service.session.Reset"

	s.mu.Lock()
	defer s.mu.Unlock()

	s.repo.ClearAllData(ctx)

	locations, dealers, err := s.repo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.locations, s.dealers, s.state = locations, dealers, State{}
	s.log.Warn("all data cleared", slog.Int("locations", len(locations)))

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validCoef(v float64) bool {
	return finite(v) && v > 0
}
