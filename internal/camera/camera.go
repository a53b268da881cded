// Package camera описывает точку обзора игрока: позицию и углы Эйлера.
// Камера только вычисляет направление взгляда и движение по земле,
// проекцию и вид возвращает как матрицы mgl32 для слоя отображения.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Значения по умолчанию
const (
	DefaultMoveSpeed   float32 = 8.0
	DefaultSensitivity float32 = 0.15
	DefaultFOV         float32 = 70.0

	// MinHeight ниже этой высоты камера не опускается
	MinHeight float32 = 1.5
	// MaxPitch предел наклона вверх/вниз в градусах
	MaxPitch float32 = 89.0

	nearPlane float32 = 0.1
	farPlane  float32 = 1000.0
)

var worldUp = mgl32.Vec3{0, 1, 0}

// Camera точка обзора. Углы хранятся в градусах.
type Camera struct {
	position mgl32.Vec3
	yaw      float32
	pitch    float32

	MoveSpeed   float32
	Sensitivity float32
	FOV         float32
}

// New создаёт камеру над полом мира, смотрящую в сторону -Z и немного вниз
func New() *Camera {
	return &Camera{
		position:    mgl32.Vec3{8, 3, 20},
		yaw:         -90,
		pitch:       -15,
		MoveSpeed:   DefaultMoveSpeed,
		Sensitivity: DefaultSensitivity,
		FOV:         DefaultFOV,
	}
}

// Position возвращает позицию камеры
func (c *Camera) Position() mgl32.Vec3 { return c.position }

// SetPosition перемещает камеру (высота ограничивается снизу MinHeight)
func (c *Camera) SetPosition(p mgl32.Vec3) {
	c.position = p
	c.clampHeight()
}

func (c *Camera) Yaw() float32   { return c.yaw }
func (c *Camera) Pitch() float32 { return c.pitch }

// SetRotation задаёт углы напрямую, наклон ограничивается ±MaxPitch
func (c *Camera) SetRotation(yaw, pitch float32) {
	c.yaw = yaw
	c.pitch = mgl32.Clamp(pitch, -MaxPitch, MaxPitch)
}

// Front возвращает единичный вектор направления взгляда
func (c *Camera) Front() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))

	return mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
}

// Right возвращает единичный вектор вправо от направления взгляда
func (c *Camera) Right() mgl32.Vec3 {
	return c.Front().Cross(worldUp).Normalize()
}

// Up возвращает единичный вектор "вверх" камеры
func (c *Camera) Up() mgl32.Vec3 {
	return c.Right().Cross(c.Front()).Normalize()
}

// Look поворачивает камеру на смещение мыши (в пикселях).
// Движение мыши вниз (dy > 0) наклоняет взгляд вниз.
func (c *Camera) Look(dx, dy float32) {
	c.yaw += dx * c.Sensitivity
	c.pitch = mgl32.Clamp(c.pitch-dy*c.Sensitivity, -MaxPitch, MaxPitch)
}

// Move сдвигает камеру за время dt. forward и right двигают по земле
// (вертикальная составляющая взгляда игнорируется), up поднимает или опускает.
// Значения намерений обычно в диапазоне [-1, 1].
func (c *Camera) Move(forward, right, up, dt float32) {
	velocity := c.MoveSpeed * dt

	front := c.Front()
	frontFlat := mgl32.Vec3{front.X(), 0, front.Z()}.Normalize()
	r := c.Right()
	rightFlat := mgl32.Vec3{r.X(), 0, r.Z()}.Normalize()

	c.position = c.position.
		Add(frontFlat.Mul(forward * velocity)).
		Add(rightFlat.Mul(right * velocity)).
		Add(worldUp.Mul(up * velocity))
	c.clampHeight()
}

func (c *Camera) clampHeight() {
	if c.position.Y() < MinHeight {
		c.position[1] = MinHeight
	}
}

// View возвращает матрицу вида
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.Front()), c.Up())
}

// Projection возвращает перспективную матрицу проекции для соотношения сторон aspect
func (c *Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, nearPlane, farPlane)
}
