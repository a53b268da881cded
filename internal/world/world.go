package world

import (
	"github.com/annel0/blockworld/internal/vec"
	"github.com/annel0/blockworld/internal/world/block"
)

// World хранит занятые клетки мира.
//
// Инвариант: координата присутствует в карте тогда и только тогда, когда
// клетка занята. Диапазон координат не ограничен ни по одной оси.
//
// World не синхронизирован: все операции вызываются из одного потока
// симуляции. Для конкурентного чтения рендером используйте Blocks(),
// который возвращает копию.
type World struct {
	blocks map[vec.Vec3]block.Material // Блоки по позициям
}

var _ block.BlockAPI = (*World)(nil)

// New создаёт пустой мир
func New() *World {
	return &World{
		blocks: make(map[vec.Vec3]block.Material),
	}
}

// HasBlock возвращает true, если клетка занята
func (w *World) HasBlock(pos vec.Vec3) bool {
	_, ok := w.blocks[pos]
	return ok
}

// GetBlock возвращает материал клетки или (block.None, false) для пустой клетки
func (w *World) GetBlock(pos vec.Vec3) (block.Material, bool) {
	m, ok := w.blocks[pos]
	return m, ok
}

// AddBlock ставит блок, перезаписывая прежний материал (последняя запись побеждает).
// block.None не является блоком: такая запись очищает клетку.
func (w *World) AddBlock(pos vec.Vec3, m block.Material) {
	if m == block.None {
		delete(w.blocks, pos)
		return
	}
	w.blocks[pos] = m
}

// RemoveBlock удаляет блок. Удаление пустой клетки ничего не делает.
func (w *World) RemoveBlock(pos vec.Vec3) {
	delete(w.blocks, pos)
}

// Blocks возвращает снимок всех занятых клеток.
// Изменения снимка не влияют на мир.
func (w *World) Blocks() map[vec.Vec3]block.Material {
	snapshot := make(map[vec.Vec3]block.Material, len(w.blocks))
	for pos, m := range w.blocks {
		snapshot[pos] = m
	}
	return snapshot
}

// Len возвращает количество занятых клеток
func (w *World) Len() int {
	return len(w.blocks)
}

// Clear удаляет все блоки (вызывается при завершении работы)
func (w *World) Clear() {
	clear(w.blocks)
}
