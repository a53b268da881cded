package template

import (
	"testing"

	"github.com/annel0/blockworld/internal/vec"
	"github.com/annel0/blockworld/internal/world"
	"github.com/annel0/blockworld/internal/world/block"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lShapeWorld мир с тремя каменными блоками в форме буквы L
func lShapeWorld() *world.World {
	w := world.New()
	w.AddBlock(vec.New(2, 0, 2), block.Stone)
	w.AddBlock(vec.New(2, 0, 3), block.Stone)
	w.AddBlock(vec.New(3, 0, 2), block.Stone)
	return w
}

func TestCapture_Offsets(t *testing.T) {
	tpl := Capture(lShapeWorld(), vec.New(2, 0, 2), vec.New(3, 0, 3), "T")

	require.Equal(t, 3, tpl.Len())
	assert.Equal(t, "T", tpl.Name())
	assert.Equal(t, []Entry{
		{Offset: vec.New(0, 0, 0), Material: block.Stone},
		{Offset: vec.New(0, 0, 1), Material: block.Stone},
		{Offset: vec.New(1, 0, 0), Material: block.Stone},
	}, tpl.Entries(), "записи идут по x, затем y, затем z")
}

func TestCapture_CornerOrderDoesNotMatter(t *testing.T) {
	w := lShapeWorld()

	a := Capture(w, vec.New(2, 0, 2), vec.New(3, 0, 3), "a")
	b := Capture(w, vec.New(3, 0, 3), vec.New(2, 0, 2), "b")
	c := Capture(w, vec.New(3, 0, 2), vec.New(2, 0, 3), "c")

	assert.Equal(t, a.Entries(), b.Entries())
	assert.Equal(t, a.Entries(), c.Entries())
}

func TestCapture_DeterministicOrder(t *testing.T) {
	w := world.New()
	w.AddBlock(vec.New(1, 1, 0), block.Wood)
	w.AddBlock(vec.New(0, 1, 1), block.Sand)
	w.AddBlock(vec.New(1, 0, 1), block.Dirt)
	w.AddBlock(vec.New(0, 0, 0), block.Grass)

	tpl := Capture(w, vec.New(0, 0, 0), vec.New(1, 1, 1), "order")

	var offsets []vec.Vec3
	for _, e := range tpl.Entries() {
		offsets = append(offsets, e.Offset)
	}
	assert.Equal(t, []vec.Vec3{
		vec.New(0, 0, 0),
		vec.New(0, 1, 1),
		vec.New(1, 0, 1),
		vec.New(1, 1, 0),
	}, offsets)
}

func TestCapture_EmptyRegion(t *testing.T) {
	tpl := Capture(lShapeWorld(), vec.New(10, 10, 10), vec.New(12, 11, 12), "empty")

	assert.Equal(t, 0, tpl.Len())
	assert.True(t, tpl.IsEmpty())
	assert.Equal(t, vec.Vec3{}, tpl.Size())
}

func TestCapture_NegativeCoordinates(t *testing.T) {
	w := world.New()
	w.AddBlock(vec.New(-5, -3, -1), block.Water)
	w.AddBlock(vec.New(-4, -3, -1), block.Stone)

	tpl := Capture(w, vec.New(-4, -2, -1), vec.New(-5, -3, -1), "neg")
	require.Equal(t, 2, tpl.Len())
	assert.Equal(t, vec.Zero, tpl.Entries()[0].Offset, "локальное начало в минимальном углу")
	assert.Equal(t, vec.New(2, 1, 1), tpl.Size())
}

func TestPlaceInWorld_RoundTrip(t *testing.T) {
	tpl := Capture(lShapeWorld(), vec.New(2, 0, 2), vec.New(3, 0, 3), "T")

	target := world.New()
	placed := tpl.PlaceInWorld(target, vec.New(10, 5, 10))
	assert.Equal(t, 3, placed)

	assert.Equal(t, map[vec.Vec3]block.Material{
		vec.New(10, 5, 10): block.Stone,
		vec.New(10, 5, 11): block.Stone,
		vec.New(11, 5, 10): block.Stone,
	}, target.Blocks(), "в мире должны быть ровно три блока шаблона")
}

func TestPlaceInWorld_Overwrites(t *testing.T) {
	tpl := Capture(lShapeWorld(), vec.New(2, 0, 2), vec.New(3, 0, 3), "T")

	target := world.New()
	target.GenerateFloor(4, 4, block.Grass)
	tpl.PlaceInWorld(target, vec.New(0, 0, 0))

	m, _ := target.GetBlock(vec.New(0, 0, 0))
	assert.Equal(t, block.Stone, m, "блок шаблона перезаписывает существующий")
	m, _ = target.GetBlock(vec.New(1, 0, 1))
	assert.Equal(t, block.Grass, m, "пустые клетки шаблона не трогают мир")
	assert.Equal(t, 16, target.Len())
}

func TestPlaceInWorld_Unbounded(t *testing.T) {
	tpl := Capture(lShapeWorld(), vec.New(2, 0, 2), vec.New(3, 0, 3), "T")

	target := world.New()
	tpl.PlaceInWorld(target, vec.New(-1000, -64, -1000))
	assert.True(t, target.HasBlock(vec.New(-999, -64, -1000)))
}

func TestSize(t *testing.T) {
	tpl := Capture(lShapeWorld(), vec.New(2, 0, 2), vec.New(3, 0, 3), "T")
	assert.Equal(t, vec.New(2, 1, 2), tpl.Size())

	// Размер считается по занятым клеткам, а не по области захвата
	wide := Capture(lShapeWorld(), vec.New(0, 0, 0), vec.New(8, 8, 8), "wide")
	assert.Equal(t, vec.New(4, 1, 4), wide.Size())
}

func TestTemplate_Immutable(t *testing.T) {
	w := lShapeWorld()
	tpl := Capture(w, vec.New(2, 0, 2), vec.New(3, 0, 3), "T")

	entries := tpl.Entries()
	entries[0].Material = block.Water
	w.RemoveBlock(vec.New(2, 0, 2))

	assert.Equal(t, block.Stone, tpl.Entries()[0].Material)
	assert.Equal(t, 3, tpl.Len(), "изменения мира после захвата не влияют на шаблон")
}

func TestNew_CopiesEntries(t *testing.T) {
	src := []Entry{{Offset: vec.Zero, Material: block.Wood}}
	tpl := New("copy", src)
	src[0].Material = block.Sand

	assert.Equal(t, block.Wood, tpl.Entries()[0].Material)
	assert.NotEqual(t, New("copy", src).ID(), tpl.ID(), "каждый шаблон получает свой ID")
}
