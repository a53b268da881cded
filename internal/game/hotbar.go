package game

import (
	"github.com/annel0/blockworld/internal/template"
	"github.com/annel0/blockworld/internal/world/block"
)

// SlotCount число слотов хотбара по умолчанию
const SlotCount = 9

// Item содержимое слота: материал или шаблон. Нулевое значение означает пустой слот.
type Item struct {
	Material block.Material
	Template *template.Template
}

// MaterialItem слот с материалом
func MaterialItem(m block.Material) Item { return Item{Material: m} }

// TemplateItem слот с шаблоном
func TemplateItem(t *template.Template) Item { return Item{Template: t} }

// IsEmpty возвращает true для пустого слота
func (i Item) IsEmpty() bool { return i.Template == nil && !i.Material.IsValid() }

// IsTemplate возвращает true, если в слоте шаблон
func (i Item) IsTemplate() bool { return i.Template != nil }

func (i Item) String() string {
	switch {
	case i.IsTemplate():
		return "template:" + i.Template.Name()
	case i.IsEmpty():
		return "empty"
	default:
		return i.Material.String()
	}
}

// Hotbar ряд слотов с одним выбранным
type Hotbar struct {
	slots    []Item
	selected int
}

// NewHotbar создаёт хотбар из slots слотов, первые из которых заняты materials.
// Лишние материалы отбрасываются.
func NewHotbar(slots int, materials []block.Material) *Hotbar {
	if slots <= 0 {
		slots = SlotCount
	}
	h := &Hotbar{slots: make([]Item, slots)}
	for i, m := range materials {
		if i >= slots {
			break
		}
		h.slots[i] = MaterialItem(m)
	}
	return h
}

// DefaultHotbar девять слотов, первые шесть заняты всеми материалами
func DefaultHotbar() *Hotbar {
	return NewHotbar(SlotCount, block.All())
}

// Len возвращает число слотов
func (h *Hotbar) Len() int { return len(h.slots) }

// Selected возвращает индекс выбранного слота
func (h *Hotbar) Selected() int { return h.selected }

// SelectedItem возвращает содержимое выбранного слота
func (h *Hotbar) SelectedItem() Item { return h.slots[h.selected] }

// Select выбирает слот. Индекс вне диапазона игнорируется.
func (h *Hotbar) Select(i int) bool {
	if i < 0 || i >= len(h.slots) {
		return false
	}
	h.selected = i
	return true
}

// Scroll переключает слот колесом: dy > 0 к предыдущему, dy < 0 к следующему,
// с переходом через край.
func (h *Hotbar) Scroll(dy float64) {
	n := len(h.slots)
	switch {
	case dy > 0:
		h.selected = (h.selected - 1 + n) % n
	case dy < 0:
		h.selected = (h.selected + 1) % n
	}
}

// Add кладёт предмет в первый пустой слот и выбирает его.
// Если пустых слотов нет, перезаписывается последний.
func (h *Hotbar) Add(item Item) int {
	for i, s := range h.slots {
		if s.IsEmpty() {
			h.slots[i] = item
			h.selected = i
			return i
		}
	}
	last := len(h.slots) - 1
	h.slots[last] = item
	h.selected = last
	return last
}

// Set кладёт предмет в слот i. Индекс вне диапазона игнорируется.
func (h *Hotbar) Set(i int, item Item) bool {
	if i < 0 || i >= len(h.slots) {
		return false
	}
	h.slots[i] = item
	return true
}

// Slots возвращает копию слотов
func (h *Hotbar) Slots() []Item {
	out := make([]Item, len(h.slots))
	copy(out, h.slots)
	return out
}
