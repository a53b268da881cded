package game

import (
	"testing"

	"github.com/annel0/blockworld/internal/template"
	"github.com/annel0/blockworld/internal/vec"
	"github.com/annel0/blockworld/internal/world/block"
	"github.com/stretchr/testify/assert"
)

func testTemplate(name string) *template.Template {
	return template.New(name, []template.Entry{{Offset: vec.Zero, Material: block.Wood}})
}

func TestDefaultHotbar(t *testing.T) {
	h := DefaultHotbar()

	assert.Equal(t, SlotCount, h.Len())
	assert.Equal(t, 0, h.Selected())
	assert.Equal(t, MaterialItem(block.Grass), h.SelectedItem())

	slots := h.Slots()
	for i, m := range block.All() {
		assert.Equal(t, m, slots[i].Material)
	}
	for _, s := range slots[len(block.All()):] {
		assert.True(t, s.IsEmpty())
	}
}

func TestHotbar_Select(t *testing.T) {
	h := DefaultHotbar()

	assert.True(t, h.Select(2))
	assert.Equal(t, block.Stone, h.SelectedItem().Material)

	assert.False(t, h.Select(-1))
	assert.False(t, h.Select(SlotCount))
	assert.Equal(t, 2, h.Selected(), "индекс вне диапазона игнорируется")
}

func TestHotbar_ScrollWraps(t *testing.T) {
	h := DefaultHotbar()

	h.Scroll(1)
	assert.Equal(t, 8, h.Selected(), "вверх с первого слота на последний")
	h.Scroll(-1)
	assert.Equal(t, 0, h.Selected(), "вниз с последнего на первый")
	h.Scroll(-3)
	assert.Equal(t, 1, h.Selected(), "величина прокрутки не важна")
	h.Scroll(0)
	assert.Equal(t, 1, h.Selected())
}

func TestHotbar_Add(t *testing.T) {
	h := DefaultHotbar()

	for i, want := range []int{6, 7, 8} {
		slot := h.Add(TemplateItem(testTemplate("t")))
		assert.Equal(t, want, slot, "шаблон %d", i)
		assert.Equal(t, want, h.Selected())
	}

	last := testTemplate("last")
	assert.Equal(t, 8, h.Add(TemplateItem(last)), "без пустых слотов перезаписывается последний")
	assert.Same(t, last, h.SelectedItem().Template)
}

func TestHotbar_SetAndItem(t *testing.T) {
	h := NewHotbar(3, []block.Material{block.Sand, block.Dirt, block.Wood, block.Water})
	assert.Equal(t, 3, h.Len(), "лишние материалы отбрасываются")

	tpl := testTemplate("tower")
	assert.True(t, h.Set(1, TemplateItem(tpl)))
	assert.False(t, h.Set(5, TemplateItem(tpl)))

	item := h.Slots()[1]
	assert.True(t, item.IsTemplate())
	assert.Equal(t, "template:tower", item.String())
	assert.Equal(t, "sand", h.Slots()[0].String())
	assert.Equal(t, "empty", Item{}.String())
}
