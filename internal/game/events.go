package game

import (
	"github.com/annel0/blockworld/internal/vec"
	"github.com/annel0/blockworld/internal/world/block"
)

// Типы событий, публикуемых контроллером в шину
const (
	EventBlockPlaced      = "BlockPlaced"
	EventBlockRemoved     = "BlockRemoved"
	EventTemplateSaved    = "TemplateSaved"
	EventTemplatePlaced   = "TemplatePlaced"
	EventSelectionChanged = "SelectionChanged"
	EventSlotChanged      = "SlotChanged"
)

// EventSource имя источника событий контроллера
const EventSource = "game"

// BlockEvent установка или удаление одного блока
type BlockEvent struct {
	Pos      vec.Vec3       `json:"pos"`
	Material block.Material `json:"material,omitempty"`
}

// TemplateSavedEvent сохранение шаблона из выделенной области
type TemplateSavedEvent struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Blocks int      `json:"blocks"`
	Size   vec.Vec3 `json:"size"`
}

// TemplatePlacedEvent установка шаблона в мир
type TemplatePlacedEvent struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Base   vec.Vec3 `json:"base"`
	Blocks int      `json:"blocks"`
}

// SelectionEvent смена состояния выделения
type SelectionEvent struct {
	State string    `json:"state"`
	Min   *vec.Vec3 `json:"min,omitempty"`
	Max   *vec.Vec3 `json:"max,omitempty"`
}

// SlotEvent смена выбранного слота хотбара
type SlotEvent struct {
	Slot int    `json:"slot"`
	Item string `json:"item"`
}
