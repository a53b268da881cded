package selection

import (
	"github.com/annel0/blockworld/internal/vec"
)

// State состояние выбора области
type State uint8

const (
	Idle      State = iota // Нет углов, выбор не активен
	Arming                 // Выбор активен, углов нет
	OneCorner              // Выбор активен, задан первый угол
	Complete               // Выбор завершён, заданы оба угла
)

// String возвращает имя состояния
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Arming:
		return "arming"
	case OneCorner:
		return "one_corner"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

// Box захватывает два противоположных угла кубоида последовательными кликами.
// Углы хранятся копиями, а не ссылками на мир.
type Box struct {
	corner1   *vec.Vec3
	corner2   *vec.Vec3
	selecting bool // Ожидаем клики по углам
	complete  bool // Заданы оба угла
}

// New создаёт пустой выбор в состоянии Idle
func New() *Box {
	return &Box{}
}

// State возвращает текущее состояние автомата
func (b *Box) State() State {
	switch {
	case b.complete:
		return Complete
	case b.selecting && b.corner1 != nil:
		return OneCorner
	case b.selecting:
		return Arming
	default:
		return Idle
	}
}

// ToggleSelectionMode включает выбор или отменяет незавершённый.
// Idle/Complete -> Arming (старые углы сбрасываются), Arming/OneCorner -> Idle.
func (b *Box) ToggleSelectionMode() {
	if b.selecting {
		b.CancelSelection()
		return
	}

	b.corner1 = nil
	b.corner2 = nil
	b.complete = false
	b.selecting = true
}

// AddCorner запоминает угол. Действует только в Arming и OneCorner.
// Возвращает true, если угол был принят.
func (b *Box) AddCorner(pos vec.Vec3) bool {
	if !b.selecting {
		return false
	}

	c := pos
	switch {
	case b.corner1 == nil:
		b.corner1 = &c
	case b.corner2 == nil:
		b.corner2 = &c
		b.complete = true
		b.selecting = false
	default:
		return false
	}
	return true
}

// CancelSelection переводит выбор в Idle из любого состояния
func (b *Box) CancelSelection() {
	b.corner1 = nil
	b.corner2 = nil
	b.selecting = false
	b.complete = false
}

// IsSelecting возвращает true в состояниях Arming и OneCorner
func (b *Box) IsSelecting() bool {
	return b.selecting
}

// HasSelection возвращает true в состоянии Complete
func (b *Box) HasSelection() bool {
	return b.complete
}

// Corners возвращает оба угла в порядке задания; ok == false, пока выбор не завершён
func (b *Box) Corners() (c1, c2 vec.Vec3, ok bool) {
	if !b.complete {
		return vec.Vec3{}, vec.Vec3{}, false
	}
	return *b.corner1, *b.corner2, true
}

// MinCorner возвращает покомпонентный минимум углов. Определён только в Complete.
func (b *Box) MinCorner() (vec.Vec3, bool) {
	if !b.complete {
		return vec.Vec3{}, false
	}
	return vec.Min(*b.corner1, *b.corner2), true
}

// MaxCorner возвращает покомпонентный максимум углов. Определён только в Complete.
func (b *Box) MaxCorner() (vec.Vec3, bool) {
	if !b.complete {
		return vec.Vec3{}, false
	}
	return vec.Max(*b.corner1, *b.corner2), true
}

// CurrentMin как MinCorner, но при одном угле возвращает его (для предпросмотра)
func (b *Box) CurrentMin() (vec.Vec3, bool) {
	switch {
	case b.corner1 != nil && b.corner2 != nil:
		return vec.Min(*b.corner1, *b.corner2), true
	case b.corner1 != nil:
		return *b.corner1, true
	}
	return vec.Vec3{}, false
}

// CurrentMax как MaxCorner, но при одном угле возвращает его (для предпросмотра)
func (b *Box) CurrentMax() (vec.Vec3, bool) {
	switch {
	case b.corner1 != nil && b.corner2 != nil:
		return vec.Max(*b.corner1, *b.corner2), true
	case b.corner1 != nil:
		return *b.corner1, true
	}
	return vec.Vec3{}, false
}
