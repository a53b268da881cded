package block

import (
	"fmt"
	"strings"
)

// Material представляет тип блока, занимающего клетку.
// Это чистый тег: сравнивается по значению и не несёт состояния.
type Material uint8

// Константы материалов
const (
	// None означает отсутствие блока и никогда не хранится в мире
	None  Material = iota // 0
	Grass                 // 1
	Dirt                  // 2
	Stone                 // 3
	Wood                  // 4
	Sand                  // 5
	Water                 // 6

	materialCount // всегда последний
)

var names = [materialCount]string{
	None:  "none",
	Grass: "grass",
	Dirt:  "dirt",
	Stone: "stone",
	Wood:  "wood",
	Sand:  "sand",
	Water: "water",
}

// registry сопоставляет имя материала с его значением
var registry = func() map[string]Material {
	m := make(map[string]Material, materialCount)
	for _, mat := range All() {
		m[names[mat]] = mat
	}
	return m
}()

// All возвращает все материалы, которые можно поставить в мир, в порядке объявления
func All() []Material {
	all := make([]Material, 0, materialCount-1)
	for m := Grass; m < materialCount; m++ {
		all = append(all, m)
	}
	return all
}

// IsValid проверяет, является ли значение допустимым материалом блока
func (m Material) IsValid() bool {
	return m > None && m < materialCount
}

// String возвращает имя материала
func (m Material) String() string {
	if m < materialCount {
		return names[m]
	}
	return fmt.Sprintf("material(%d)", uint8(m))
}

// ParseMaterial возвращает материал по имени (без учёта регистра)
func ParseMaterial(name string) (Material, error) {
	if m, ok := registry[strings.ToLower(strings.TrimSpace(name))]; ok {
		return m, nil
	}
	return None, fmt.Errorf("неизвестный материал %q", name)
}

// MarshalText реализует encoding.TextMarshaler, материал сериализуется по имени
func (m Material) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("недопустимый материал %d", uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText реализует encoding.TextUnmarshaler
func (m *Material) UnmarshalText(text []byte) error {
	parsed, err := ParseMaterial(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
