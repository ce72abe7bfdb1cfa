package storage

import "fmt"

type LocationType string

const (
	LocationOffice    LocationType = "office"
	LocationWarehouse LocationType = "warehouse"
	LocationStore     LocationType = "store"
)

func (t LocationType) Valid() bool {
	switch t {
	case LocationOffice, LocationWarehouse, LocationStore:
		return true
	}
	return false
}

type Location struct {
	ID      int64        `json:"id"`
	Name    string       `json:"name"`
	City    string       `json:"city"`
	Address string       `json:"address"`
	Type    LocationType `json:"type"`
}

// Label - название объекта для отчётов: "Търговски обект (Ямбол)".
func (l Location) Label() string {
	return fmt.Sprintf("%s (%s)", l.Name, l.City)
}

// DefaultLocations - объекты AutoGrand, которыми заполняется пустое хранилище.
var DefaultLocations = []Location{
	{Name: "Централен офис", City: "София", Address: "бул. Черни връх 157", Type: LocationOffice},

	{Name: "Централен склад", City: "Стара Загора", Address: "ул. Новозагорско шосе 35001", Type: LocationWarehouse},
	{Name: "Склад Рожен", City: "София", Address: "бул. Рожен 22, НПЗ Военна рампа", Type: LocationWarehouse},
	{Name: "Регионален склад", City: "Благоевград", Address: "бул. Васил Левски 38", Type: LocationWarehouse},
	{Name: "Регионален склад", City: "Пловдив", Address: "бул. Асеновградско шосе 2", Type: LocationWarehouse},
	{Name: "Регионален склад", City: "Стара Загора", Address: "ул. Новозагорско шосе 35001", Type: LocationWarehouse},
	{Name: "Регионален склад", City: "Хасково", Address: "бул. Илинден 6", Type: LocationWarehouse},
	{Name: "Регионален склад", City: "Бургас", Address: "ул. Индустриална 51", Type: LocationWarehouse},

	{Name: "Търговски обект", City: "Ямбол", Address: "ул. Ормана 68", Type: LocationStore},
	{Name: "Търговски обект", City: "Харманли", Address: "Главен път Е80 Паркинг КВЕЛЕ", Type: LocationStore},
	{Name: "Търговски обект", City: "Сливен", Address: "бул. Цар Симеон 43", Type: LocationStore},
	{Name: "Търговски обект", City: "Сандански", Address: "ул. Стефан Стамболов 49", Type: LocationStore},
	{Name: "Търговски обект", City: "Петрич", Address: "ул. Места 18 Б", Type: LocationStore},
	{Name: "Търговски обект", City: "Кърджали", Address: "бул. България 99", Type: LocationStore},
	{Name: "Търговски обект", City: "Казанлък", Address: "бул. Александър Батенберг 12", Type: LocationStore},
	{Name: "Търговски обект", City: "Димитровград", Address: "бул. Стефан Стамболов 6Б", Type: LocationStore},
}
