package block

import (
	"github.com/annel0/blockworld/internal/vec"
)

// BlockReader определяет интерфейс чтения занятости клеток мира.
// Этого достаточно для трассировки лучей: любое представление мира,
// умеющее отвечать на HasBlock, подходит для Raycaster.
type BlockReader interface {
	// HasBlock возвращает true, если клетка занята.
	HasBlock(pos vec.Vec3) bool

	// GetBlock возвращает материал клетки; ok == false для пустой клетки.
	GetBlock(pos vec.Vec3) (Material, bool)
}

// BlockAPI определяет полный интерфейс взаимодействия с блоками мира.
// Реализация с картой (world.World) может быть заменена на чанковую
// без изменения вызывающего кода.
type BlockAPI interface {
	BlockReader

	// AddBlock устанавливает или перезаписывает материал клетки.
	AddBlock(pos vec.Vec3, m Material)

	// RemoveBlock удаляет блок; удаление пустой клетки ничего не делает.
	RemoveBlock(pos vec.Vec3)
}
