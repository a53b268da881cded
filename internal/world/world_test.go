package world

import (
	"testing"

	"github.com/annel0/blockworld/internal/vec"
	"github.com/annel0/blockworld/internal/world/block"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorld_Creation(t *testing.T) {
	w := New()

	require.NotNil(t, w, "World должен быть создан")
	assert.Equal(t, 0, w.Len(), "Новый мир должен быть пустым")
	assert.False(t, w.HasBlock(vec.Zero))
}

func TestWorld_AddBlockOverwrites(t *testing.T) {
	w := New()
	positions := []vec.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: -5, Y: -100, Z: 7},
		{X: 1 << 40, Y: 3, Z: -(1 << 40)},
	}

	for _, pos := range positions {
		// Первая запись в пустую клетку
		w.AddBlock(pos, block.Stone)
		assert.True(t, w.HasBlock(pos), "клетка %v должна быть занята", pos)
		m, ok := w.GetBlock(pos)
		assert.True(t, ok)
		assert.Equal(t, block.Stone, m)

		// Перезапись: последняя запись побеждает
		w.AddBlock(pos, block.Water)
		m, ok = w.GetBlock(pos)
		assert.True(t, ok)
		assert.Equal(t, block.Water, m, "материал в %v должен быть перезаписан", pos)
	}

	assert.Equal(t, len(positions), w.Len(), "перезапись не должна добавлять клеток")
}

func TestWorld_RemoveBlockIdempotent(t *testing.T) {
	w := New()
	pos := vec.New(3, 1, 4)
	w.AddBlock(pos, block.Dirt)
	w.AddBlock(vec.New(3, 2, 4), block.Dirt)

	w.RemoveBlock(pos)
	assert.False(t, w.HasBlock(pos))
	after := w.Blocks()

	// Повторное удаление ничего не меняет
	w.RemoveBlock(pos)
	assert.False(t, w.HasBlock(pos))
	assert.Equal(t, after, w.Blocks())

	// Удаление пустой клетки не является ошибкой
	w.RemoveBlock(vec.New(99, 99, 99))
	assert.Equal(t, 1, w.Len())
}

func TestWorld_GetBlockMissing(t *testing.T) {
	w := New()

	m, ok := w.GetBlock(vec.New(1, 2, 3))
	assert.False(t, ok)
	assert.Equal(t, block.None, m)
}

func TestWorld_AddNoneClearsCell(t *testing.T) {
	w := New()
	pos := vec.New(0, 5, 0)

	w.AddBlock(pos, block.None)
	assert.False(t, w.HasBlock(pos), "None не должен занимать клетку")

	w.AddBlock(pos, block.Sand)
	w.AddBlock(pos, block.None)
	assert.False(t, w.HasBlock(pos))
	assert.Equal(t, 0, w.Len())
}

func TestWorld_BlocksSnapshotIsCopy(t *testing.T) {
	w := New()
	w.AddBlock(vec.New(1, 0, 1), block.Grass)

	snapshot := w.Blocks()
	snapshot[vec.New(2, 0, 2)] = block.Stone
	delete(snapshot, vec.New(1, 0, 1))

	assert.True(t, w.HasBlock(vec.New(1, 0, 1)), "изменение снимка не должно влиять на мир")
	assert.False(t, w.HasBlock(vec.New(2, 0, 2)))
}

func TestWorld_Clear(t *testing.T) {
	w := New()
	w.GenerateFloor(4, 4, block.Grass)
	require.Equal(t, 16, w.Len())

	w.Clear()
	assert.Equal(t, 0, w.Len())
	assert.False(t, w.HasBlock(vec.Zero))
}
