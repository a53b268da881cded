package vec

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vec3 представляет трехмерный вектор с целочисленными координатами.
// Используется как ключ карты блоков: две клетки совпадают только при
// точном равенстве всех трёх компонент.
type Vec3 struct {
	X int
	Y int
	Z int
}

// Единичные векторы направлений
var (
	Zero  = Vec3{}
	Up    = Vec3{X: 0, Y: 1, Z: 0}
	Down  = Vec3{X: 0, Y: -1, Z: 0}
	East  = Vec3{X: 1, Y: 0, Z: 0}
	West  = Vec3{X: -1, Y: 0, Z: 0}
	South = Vec3{X: 0, Y: 0, Z: 1}
	North = Vec3{X: 0, Y: 0, Z: -1}
)

// New создаёт вектор из трёх компонент
func New(x, y, z int) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Floor возвращает клетку, содержащую точку p (каждая ось округляется вниз независимо)
func Floor(p mgl32.Vec3) Vec3 {
	return Vec3{
		X: int(math.Floor(float64(p[0]))),
		Y: int(math.Floor(float64(p[1]))),
		Z: int(math.Floor(float64(p[2]))),
	}
}

// DistanceTo возвращает квадрат расстояния до другого вектора
func (v Vec3) DistanceTo(other Vec3) float64 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	dz := v.Z - other.Z
	return float64(dx*dx + dy*dy + dz*dz)
}

// Equals проверяет равенство векторов
func (v Vec3) Equals(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// Add складывает два вектора
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Sub вычитает вектор
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Min возвращает покомпонентный минимум двух векторов
func Min(a, b Vec3) Vec3 {
	return Vec3{X: min(a.X, b.X), Y: min(a.Y, b.Y), Z: min(a.Z, b.Z)}
}

// Max возвращает покомпонентный максимум двух векторов
func Max(a, b Vec3) Vec3 {
	return Vec3{X: max(a.X, b.X), Y: max(a.Y, b.Y), Z: max(a.Z, b.Z)}
}

// Bounds нормализует пару произвольных углов в (min, max)
func Bounds(a, b Vec3) (Vec3, Vec3) {
	return Min(a, b), Max(a, b)
}

// ToFloat переводит клетку в вектор с плавающей точкой (угол клетки)
func (v Vec3) ToFloat() mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// Center возвращает центр клетки
func (v Vec3) Center() mgl32.Vec3 {
	return v.ToFloat().Add(mgl32.Vec3{0.5, 0.5, 0.5})
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%d, %d, %d)", v.X, v.Y, v.Z)
}
