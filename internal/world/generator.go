package world

import (
	"github.com/annel0/blockworld/internal/util"
	"github.com/annel0/blockworld/internal/vec"
	"github.com/annel0/blockworld/internal/world/block"
)

// Пороговые значения шума для выбора верхнего блока колонны
const (
	BeachMax      = 0.30 // Ниже - песок
	MountainStart = 0.80 // Выше - камень на поверхности
)

// GenerateFloor заполняет клетки (x, 0, z) для x в [0, width), z в [0, depth)
// указанным материалом. Повторный вызов заполняет те же клетки.
func (w *World) GenerateFloor(width, depth int, m block.Material) {
	for x := 0; x < width; x++ {
		for z := 0; z < depth; z++ {
			// Слой пола (y = 0)
			w.AddBlock(vec.Vec3{X: x, Y: 0, Z: z}, m)
		}
	}
}

// TerrainGenerator строит конечный холмистый участок по шуму Перлина.
// Это альтернатива плоскому полу для начального заполнения мира.
type TerrainGenerator struct {
	Seed       int64   // Сид для генерации шума
	NoiseScale float64 // Масштаб шума (сглаженность рельефа)
	MaxHeight  int     // Максимальная высота колонны в блоках
	DirtDepth  int     // Толщина слоя земли под поверхностью

	noise *util.Noise
}

// NewTerrainGenerator создаёт генератор рельефа
func NewTerrainGenerator(seed int64, maxHeight int) *TerrainGenerator {
	if maxHeight < 1 {
		maxHeight = 1
	}
	return &TerrainGenerator{
		Seed:       seed,
		NoiseScale: 0.08,
		MaxHeight:  maxHeight,
		DirtDepth:  2,
		noise:      util.NewNoise(seed),
	}
}

// ColumnHeight возвращает количество блоков в колонне (x, z), от 1 до MaxHeight
func (tg *TerrainGenerator) ColumnHeight(x, z int) int {
	h := tg.sample(x, z)
	height := 1 + int(h*float64(tg.MaxHeight))
	if height > tg.MaxHeight {
		height = tg.MaxHeight
	}
	return height
}

// Generate заполняет участок [0, width) x [0, depth) колоннами, начиная с y = 0
func (tg *TerrainGenerator) Generate(w block.BlockAPI, width, depth int) {
	for x := 0; x < width; x++ {
		for z := 0; z < depth; z++ {
			h := tg.sample(x, z)
			height := tg.ColumnHeight(x, z)
			top := tg.surfaceFor(h)

			for y := 0; y < height; y++ {
				w.AddBlock(vec.Vec3{X: x, Y: y, Z: z}, tg.materialAt(y, height, top))
			}
		}
	}
}

func (tg *TerrainGenerator) sample(x, z int) float64 {
	return tg.noise.Noise2D(float64(x)*tg.NoiseScale, float64(z)*tg.NoiseScale)
}

// surfaceFor возвращает верхний блок колонны в зависимости от высоты шума
func (tg *TerrainGenerator) surfaceFor(h float64) block.Material {
	switch {
	case h < BeachMax:
		return block.Sand
	case h >= MountainStart:
		return block.Stone
	default:
		return block.Grass
	}
}

// materialAt возвращает материал на высоте y в колонне высотой height
func (tg *TerrainGenerator) materialAt(y, height int, top block.Material) block.Material {
	switch {
	case y == height-1:
		return top
	case y >= height-1-tg.DirtDepth && top == block.Grass:
		return block.Dirt
	case y >= height-1-tg.DirtDepth && top == block.Sand:
		return block.Sand
	default:
		return block.Stone
	}
}
