// Package palette сопоставляет материалам отображаемые имена и цвета.
// Ядро мира о цветах ничего не знает, палитра нужна только слою отображения.
package palette

import (
	"math"

	"github.com/annel0/blockworld/internal/vec"
	"github.com/annel0/blockworld/internal/world/block"
	"github.com/lucasb-eyer/go-colorful"
)

// Entry описание материала для отображения
type Entry struct {
	Material block.Material
	Name     string
	Color    colorful.Color
}

var table = []Entry{
	{Material: block.Grass, Name: "Çimen", Color: colorful.Color{R: 0.2, G: 0.8, B: 0.2}},
	{Material: block.Dirt, Name: "Toprak", Color: colorful.Color{R: 0.55, G: 0.35, B: 0.15}},
	{Material: block.Stone, Name: "Taş", Color: colorful.Color{R: 0.5, G: 0.5, B: 0.5}},
	{Material: block.Wood, Name: "Ahşap", Color: colorful.Color{R: 0.6, G: 0.4, B: 0.2}},
	{Material: block.Sand, Name: "Kum", Color: colorful.Color{R: 0.9, G: 0.85, B: 0.6}},
	{Material: block.Water, Name: "Su", Color: colorful.Color{R: 0.2, G: 0.4, B: 0.9}},
}

// Sky цвет фона сцены
var Sky = colorful.Color{R: 0.529, G: 0.808, B: 0.922}

// Параметры освещения граней
const (
	ambient = 0.4
	diffuse = 0.8
)

// lightDir направление на источник света (обратное направлению лучей)
var lightDir = func() [3]float64 {
	x, y, z := 0.3, 1.0, 0.5
	l := math.Sqrt(x*x + y*y + z*z)
	return [3]float64{x / l, y / l, z / l}
}()

// Lookup возвращает описание материала
func Lookup(m block.Material) (Entry, bool) {
	for _, e := range table {
		if e.Material == m {
			return e, true
		}
	}
	return Entry{}, false
}

// Entries возвращает все записи палитры в порядке материалов
func Entries() []Entry {
	out := make([]Entry, len(table))
	copy(out, table)
	return out
}

// Name возвращает отображаемое имя материала. Для неизвестных материалов
// используется техническое имя.
func Name(m block.Material) string {
	if e, ok := Lookup(m); ok {
		return e.Name
	}
	return m.String()
}

// Color возвращает базовый цвет материала (чёрный для неизвестных)
func Color(m block.Material) colorful.Color {
	e, _ := Lookup(m)
	return e.Color
}

// Hex возвращает цвет материала в формате #rrggbb
func Hex(m block.Material) string {
	return Color(m).Hex()
}

// Shade возвращает цвет грани блока с нормалью normal: фоновая составляющая
// плюс рассеянная по закону Ламберта.
func Shade(m block.Material, normal vec.Vec3) colorful.Color {
	n := [3]float64{float64(normal.X), float64(normal.Y), float64(normal.Z)}
	if l := math.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2]); l > 0 {
		n[0], n[1], n[2] = n[0]/l, n[1]/l, n[2]/l
	}

	dot := n[0]*lightDir[0] + n[1]*lightDir[1] + n[2]*lightDir[2]
	k := ambient + diffuse*math.Max(dot, 0)

	c := Color(m)
	return colorful.Color{R: c.R * k, G: c.G * k, B: c.B * k}.Clamped()
}

// Nearest возвращает материал, цвет которого ближе всего к c в пространстве Lab
func Nearest(c colorful.Color) block.Material {
	best := block.None
	bestDist := math.Inf(1)
	for _, e := range table {
		if d := c.DistanceLab(e.Color); d < bestDist {
			bestDist = d
			best = e.Material
		}
	}
	return best
}

// NearestHex то же, что Nearest, для цвета в формате #rrggbb
func NearestHex(hex string) (block.Material, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return block.None, err
	}
	return Nearest(c), nil
}
