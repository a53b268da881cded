// Package template захватывает прямоугольную область мира в шаблон
// и ставит его обратно в любую точку.
//
// Смещения блоков шаблона отсчитываются от минимального угла области
// захвата, поэтому первая клетка шаблона всегда (0, 0, 0) по каждой оси.
// Захваченный шаблон не изменяется.
package template

import (
	"github.com/annel0/blockworld/internal/vec"
	"github.com/annel0/blockworld/internal/world/block"
	"github.com/google/uuid"
)

// Entry один блок шаблона
type Entry struct {
	Offset   vec.Vec3       // Смещение от локального начала шаблона
	Material block.Material // Материал блока
}

// Template сохранённый набор блоков (структура)
type Template struct {
	id      uuid.UUID
	name    string
	entries []Entry
}

// New создаёт шаблон из готовых записей. Записи копируются.
func New(name string, entries []Entry) *Template {
	t := &Template{
		id:      uuid.New(),
		name:    name,
		entries: make([]Entry, len(entries)),
	}
	copy(t.entries, entries)
	return t
}

// Capture копирует все занятые клетки кубоида между углами a и b (включительно)
// в новый шаблон. Обход идёт по x, затем y, затем z по возрастанию, поэтому
// порядок записей воспроизводим. Пустые клетки пропускаются; шаблон пустой
// области не содержит записей.
//
// Объём области не ограничивается: вызывающий код отвечает за разумный размер.
func Capture(w block.BlockReader, a, b vec.Vec3, name string) *Template {
	lo, hi := vec.Bounds(a, b)
	t := &Template{
		id:   uuid.New(),
		name: name,
	}

	// Сканируем все клетки области
	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			for z := lo.Z; z <= hi.Z; z++ {
				pos := vec.Vec3{X: x, Y: y, Z: z}
				if m, ok := w.GetBlock(pos); ok {
					// Смещение относительно минимального угла
					t.entries = append(t.entries, Entry{Offset: pos.Sub(lo), Material: m})
				}
			}
		}
	}

	return t
}

// PlaceInWorld ставит блоки шаблона в мир относительно base, перезаписывая
// существующие блоки. Возвращает количество поставленных блоков.
func (t *Template) PlaceInWorld(w block.BlockAPI, base vec.Vec3) int {
	for _, e := range t.entries {
		w.AddBlock(base.Add(e.Offset), e.Material)
	}
	return len(t.entries)
}

// Size возвращает размеры шаблона: максимальное смещение по каждой оси плюс один.
// Для пустого шаблона (0, 0, 0).
func (t *Template) Size() vec.Vec3 {
	if len(t.entries) == 0 {
		return vec.Vec3{}
	}

	var hi vec.Vec3
	for _, e := range t.entries {
		hi = vec.Max(hi, e.Offset)
	}
	return hi.Add(vec.Vec3{X: 1, Y: 1, Z: 1})
}

// ID возвращает уникальный идентификатор шаблона
func (t *Template) ID() uuid.UUID {
	return t.id
}

// Name возвращает имя шаблона
func (t *Template) Name() string {
	return t.name
}

// Len возвращает количество блоков в шаблоне
func (t *Template) Len() int {
	return len(t.entries)
}

// IsEmpty возвращает true, если шаблон не содержит блоков
func (t *Template) IsEmpty() bool {
	return len(t.entries) == 0
}

// Entries возвращает копию записей шаблона в порядке захвата
func (t *Template) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}
