// Package raycast находит первый занятый блок вдоль луча взгляда.
//
// Луч проходится фиксированными шагами StepSize (это не точный DDA): на каждом
// шаге точка округляется вниз до клетки, и первая занятая клетка считается
// попаданием. Нормаль грани определяется по последней пустой клетке перед
// попаданием. Cast не хранит состояния между вызовами и только читает мир.
package raycast

import (
	"github.com/annel0/blockworld/internal/vec"
	"github.com/go-gl/mathgl/mgl32"
)

// StepSize шаг продвижения луча в мировых единицах
const StepSize float32 = 0.1

// Occupancy отвечает на вопрос, занята ли клетка
type Occupancy interface {
	HasBlock(pos vec.Vec3) bool
}

// Hit результат трассировки луча
type Hit struct {
	Block    vec.Vec3 // Позиция блока, в который попал луч
	Normal   vec.Vec3 // Нормаль грани, через которую луч вошёл в блок
	Distance float32  // Пройденное расстояние от начала луча
}

// Adjacent возвращает клетку перед гранью попадания (куда ставится новый блок)
func (h Hit) Adjacent() vec.Vec3 {
	return h.Block.Add(h.Normal)
}

// Cast пускает луч из origin в направлении direction (нормализуется внутри)
// и возвращает первое попадание не дальше maxDistance.
// ok == false, если луч ни во что не попал или направление нулевое.
func Cast(origin, direction mgl32.Vec3, world Occupancy, maxDistance float32) (hit Hit, ok bool) {
	if direction.Len() == 0 {
		return Hit{}, false
	}
	dir := direction.Normalize()
	step := dir.Mul(StepSize)

	current := origin
	var lastEmpty vec.Vec3
	seenEmpty := false

	var distance float32
	for distance < maxDistance {
		// Текущую позицию переводим в координаты блока
		pos := vec.Floor(current)

		if world.HasBlock(pos) {
			return Hit{
				Block:    pos,
				Normal:   faceNormal(lastEmpty, seenEmpty, pos),
				Distance: distance,
			}, true
		}

		// Последняя пустая клетка нужна для нормали
		lastEmpty = pos
		seenEmpty = true

		current = current.Add(step)
		distance += StepSize
	}

	return Hit{}, false
}

// faceNormal определяет, через какую грань луч вошёл в блок to из клетки from.
// Выбирается ось с наибольшей по модулю разницей; при равенстве
// предпочтение отдаётся x, затем y, затем z.
func faceNormal(from vec.Vec3, seen bool, to vec.Vec3) vec.Vec3 {
	if !seen {
		return vec.Up // Луч начался внутри блока
	}

	d := from.Sub(to)
	ax, ay, az := abs(d.X), abs(d.Y), abs(d.Z)

	switch {
	case ax >= ay && ax >= az:
		return vec.Vec3{X: sign(d.X)}
	case ay >= ax && ay >= az:
		return vec.Vec3{Y: sign(d.Y)}
	default:
		return vec.Vec3{Z: sign(d.Z)}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// sign возвращает 1 для положительных значений и -1 иначе
func sign(v int) int {
	if v > 0 {
		return 1
	}
	return -1
}
