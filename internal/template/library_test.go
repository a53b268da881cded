package template

import (
	"testing"

	"github.com/annel0/blockworld/internal/vec"
	"github.com/annel0/blockworld/internal/world"
	"github.com/annel0/blockworld/internal/world/block"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibrary_SaveSelectionNaming(t *testing.T) {
	w := lShapeWorld()
	lib := NewLibrary()

	assert.Equal(t, "Structure_1", lib.NextName())

	first, err := lib.SaveSelection(w, vec.New(2, 0, 2), vec.New(3, 0, 3))
	require.NoError(t, err)
	assert.Equal(t, "Structure_1", first.Name())

	second, err := lib.SaveSelection(w, vec.New(2, 0, 2), vec.New(2, 0, 3))
	require.NoError(t, err)
	assert.Equal(t, "Structure_2", second.Name())
	assert.Equal(t, 2, second.Len())

	assert.Equal(t, 2, lib.Len())
	assert.Equal(t, []*Template{first, second}, lib.List())
}

func TestLibrary_EmptyCaptureDiscarded(t *testing.T) {
	lib := NewLibrary()

	tpl, err := lib.SaveSelection(world.New(), vec.New(0, 0, 0), vec.New(4, 4, 4))
	assert.ErrorIs(t, err, ErrEmptyTemplate)
	assert.Nil(t, tpl)
	assert.Equal(t, 0, lib.Len())
	assert.Equal(t, "Structure_1", lib.NextName(), "отброшенный захват не занимает номер")

	assert.ErrorIs(t, lib.Add(nil), ErrEmptyTemplate)
}

func TestLibrary_GetAndFind(t *testing.T) {
	lib := NewLibrary()
	tpl := New("tower", []Entry{
		{Offset: vec.New(0, 0, 0), Material: block.Stone},
		{Offset: vec.New(0, 1, 0), Material: block.Stone},
	})
	require.NoError(t, lib.Add(tpl))
	require.NoError(t, lib.Add(tpl), "повторное добавление того же шаблона игнорируется")
	assert.Equal(t, 1, lib.Len())

	got, err := lib.Get(tpl.ID())
	require.NoError(t, err)
	assert.Same(t, tpl, got)

	_, err = lib.Get(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	found, ok := lib.FindByName("tower")
	assert.True(t, ok)
	assert.Same(t, tpl, found)

	_, ok = lib.FindByName("castle")
	assert.False(t, ok)
}

func TestLibrary_ListIsCopy(t *testing.T) {
	lib := NewLibrary()
	_, err := lib.SaveSelection(lShapeWorld(), vec.New(2, 0, 2), vec.New(3, 0, 3))
	require.NoError(t, err)

	list := lib.List()
	list[0] = nil
	assert.NotNil(t, lib.List()[0])
}
