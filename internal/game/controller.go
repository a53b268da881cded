// Package game связывает мир, камеру, хотбар, выделение и библиотеку
// шаблонов в один покадровый цикл взаимодействия игрока с миром.
package game

import (
	"context"
	"errors"

	"github.com/annel0/blockworld/internal/camera"
	"github.com/annel0/blockworld/internal/eventbus"
	"github.com/annel0/blockworld/internal/logging"
	"github.com/annel0/blockworld/internal/raycast"
	"github.com/annel0/blockworld/internal/selection"
	"github.com/annel0/blockworld/internal/template"
	"github.com/annel0/blockworld/internal/vec"
	"github.com/annel0/blockworld/internal/world"
	"github.com/annel0/blockworld/internal/world/block"
	"github.com/go-gl/mathgl/mgl32"
)

// Значения по умолчанию
const (
	DefaultReach      float32 = 10.0
	DefaultClickDelay float32 = 0.2
)

// Recorder получает счётчики взаимодействия (реализуется пакетом metrics)
type Recorder interface {
	RaycastDone(hit bool)
	BlockPlaced()
	BlockRemoved()
	TemplateSaved()
	TemplatePlaced(blocks int)
	WorldSize(blocks int)
}

type nopRecorder struct{}

func (nopRecorder) RaycastDone(bool) {}
func (nopRecorder) BlockPlaced() {}
func (nopRecorder) BlockRemoved() {}
func (nopRecorder) TemplateSaved() {}
func (nopRecorder) TemplatePlaced(int) {}
func (nopRecorder) WorldSize(int) {}

// Input намерения игрока за один тик
type Input struct {
	LookX, LookY float32 // Смещение мыши в пикселях

	Forward, Right, Up float32 // Движение, обычно в [-1, 1]

	Slot   int     // 1..N выбирает слот N-1, 0 без изменений
	Scroll float64 // Колесо: > 0 предыдущий слот, < 0 следующий
	Assign int     // 1..N кладёт N-й сохранённый шаблон в выбранный слот, 0 без изменений

	ToggleSelection bool // Включить/отменить выделение области
	Capture         bool // Сохранить выделенную область как шаблон

	Primary   bool // Основная кнопка удерживается (ломать, ставить угол)
	Secondary bool // Дополнительная кнопка удерживается (ставить)
}

// Action действие, выполненное контроллером за тик
type Action uint8

const (
	ActionCorner Action = iota + 1
	ActionBreakBlock
	ActionPlaceBlock
	ActionPlaceTemplate
)

func (a Action) String() string {
	switch a {
	case ActionCorner:
		return "corner"
	case ActionBreakBlock:
		return "break"
	case ActionPlaceBlock:
		return "place"
	case ActionPlaceTemplate:
		return "place_template"
	default:
		return "none"
	}
}

// Result итог тика
type Result struct {
	Target    raycast.Hit
	HasTarget bool

	Actions []Action

	// Saved новый шаблон, если в этом тике выделение было сохранено
	Saved *template.Template
	// Placed число блоков, записанных установкой шаблона
	Placed int
}

// Frame состояние для отрисовки кадра
type Frame struct {
	Blocks map[vec.Vec3]block.Material

	Target    raycast.Hit
	HasTarget bool

	Selection        selection.State
	SelectionMin     vec.Vec3
	SelectionMax     vec.Vec3
	HasSelectionArea bool

	Slot int
	Item Item

	Camera mgl32.Vec3
	Front  mgl32.Vec3
}

// Options параметры контроллера. Нулевые значения заменяются значениями по умолчанию.
type Options struct {
	Reach      float32
	ClickDelay float32
	Hotbar     *Hotbar
	Camera     *camera.Camera
	Library    *template.Library
	Bus        eventbus.EventBus // nil: публикация в глобальную шину
	Recorder   Recorder
}

// Controller выполняет один тик взаимодействия: движение камеры, выбор слота,
// выделение и сохранение области, луч взгляда и клики по миру.
// Не потокобезопасен: все вызовы из одного цикла.
type Controller struct {
	world     *world.World
	camera    *camera.Camera
	hotbar    *Hotbar
	selection *selection.Box
	library   *template.Library

	reach      float32
	clickDelay float32
	cooldown   float32

	target    raycast.Hit
	hasTarget bool

	bus      eventbus.EventBus
	recorder Recorder
	logger   *logging.Logger
}

// NewController создаёт контроллер над миром w
func NewController(w *world.World, opts Options) *Controller {
	c := &Controller{
		world:      w,
		camera:     opts.Camera,
		hotbar:     opts.Hotbar,
		selection:  selection.New(),
		library:    opts.Library,
		reach:      opts.Reach,
		clickDelay: opts.ClickDelay,
		bus:        opts.Bus,
		recorder:   opts.Recorder,
		logger:     logging.GetComponentLogger(logging.ComponentGame),
	}
	if c.camera == nil {
		c.camera = camera.New()
	}
	if c.hotbar == nil {
		c.hotbar = DefaultHotbar()
	}
	if c.library == nil {
		c.library = template.NewLibrary()
	}
	if c.reach <= 0 {
		c.reach = DefaultReach
	}
	if c.clickDelay <= 0 {
		c.clickDelay = DefaultClickDelay
	}
	if c.recorder == nil {
		c.recorder = nopRecorder{}
	}
	return c
}

func (c *Controller) World() *world.World { return c.world }
func (c *Controller) Camera() *camera.Camera { return c.camera }
func (c *Controller) Hotbar() *Hotbar { return c.hotbar }
func (c *Controller) Selection() *selection.Box { return c.selection }
func (c *Controller) Library() *template.Library { return c.library }
func (c *Controller) Cooldown() float32 { return c.cooldown }
func (c *Controller) Target() (raycast.Hit, bool) { return c.target, c.hasTarget }

// Update выполняет один тик длительностью dt секунд
func (c *Controller) Update(dt float32, in Input) Result {
	var res Result

	c.camera.Look(in.LookX, in.LookY)
	c.camera.Move(in.Forward, in.Right, in.Up, dt)

	c.handleHotbar(in)

	if c.cooldown > 0 {
		c.cooldown -= dt
	}

	// Предмет фиксируется до сохранения выделения: новый шаблон
	// становится активным только со следующего тика
	item := c.hotbar.SelectedItem()

	if in.ToggleSelection {
		c.selection.ToggleSelectionMode()
		c.publishSelection()
	}

	if in.Capture && c.selection.HasSelection() {
		res.Saved = c.saveSelection()
	}

	c.target, c.hasTarget = raycast.Cast(c.camera.Position(), c.camera.Front(), c.world, c.reach)
	c.recorder.RaycastDone(c.hasTarget)
	res.Target, res.HasTarget = c.target, c.hasTarget

	if c.hasTarget && c.cooldown <= 0 {
		c.interact(in, item, &res)
	}

	c.recorder.WorldSize(c.world.Len())
	return res
}

func (c *Controller) handleHotbar(in Input) {
	changed := false
	if in.Slot > 0 && c.hotbar.Select(in.Slot-1) {
		changed = true
	}
	if in.Scroll != 0 {
		c.hotbar.Scroll(in.Scroll)
		changed = true
	}
	if in.Assign > 0 {
		list := c.library.List()
		if in.Assign <= len(list) {
			c.hotbar.Set(c.hotbar.Selected(), TemplateItem(list[in.Assign-1]))
			changed = true
		} else {
			c.logger.Warn("Шаблона №%d нет, сохранено %d", in.Assign, len(list))
		}
	}

	if changed {
		item := c.hotbar.SelectedItem()
		c.logger.Debug("Выбран слот %d: %s", c.hotbar.Selected()+1, item)
		c.publish(EventSlotChanged, SlotEvent{Slot: c.hotbar.Selected(), Item: item.String()})
	}
}

// interact применяет клики предметом item к блоку под прицелом.
// Каждое действие перезапускает задержку клика.
func (c *Controller) interact(in Input, item Item, res *Result) {
	hit := c.target

	switch {
	case c.selection.IsSelecting():
		if in.Primary && c.selection.AddCorner(hit.Block) {
			res.Actions = append(res.Actions, ActionCorner)
			c.cooldown = c.clickDelay
			c.publishSelection()
		}

	case item.IsTemplate():
		if in.Secondary {
			base := hit.Adjacent()
			n := item.Template.PlaceInWorld(c.world, base)
			res.Actions = append(res.Actions, ActionPlaceTemplate)
			res.Placed += n
			c.cooldown = c.clickDelay

			c.logger.Info("Шаблон %s установлен в %v (%d блоков)", item.Template.Name(), base, n)
			c.recorder.TemplatePlaced(n)
			c.publish(EventTemplatePlaced, TemplatePlacedEvent{
				ID:     item.Template.ID().String(),
				Name:   item.Template.Name(),
				Base:   base,
				Blocks: n,
			})
		}
		if in.Primary {
			c.breakBlock(hit.Block, res)
		}

	case !item.IsEmpty():
		if in.Primary {
			c.breakBlock(hit.Block, res)
		}
		if in.Secondary {
			pos := hit.Adjacent()
			c.world.AddBlock(pos, item.Material)
			res.Actions = append(res.Actions, ActionPlaceBlock)
			c.cooldown = c.clickDelay

			c.recorder.BlockPlaced()
			c.publish(EventBlockPlaced, BlockEvent{Pos: pos, Material: item.Material})
		}
	}
}

func (c *Controller) breakBlock(pos vec.Vec3, res *Result) {
	m, _ := c.world.GetBlock(pos)
	c.world.RemoveBlock(pos)
	res.Actions = append(res.Actions, ActionBreakBlock)
	c.cooldown = c.clickDelay

	c.recorder.BlockRemoved()
	c.publish(EventBlockRemoved, BlockEvent{Pos: pos, Material: m})
}

// saveSelection сохраняет завершённое выделение в библиотеку и кладёт
// шаблон в хотбар. Выделение сбрасывается в любом случае.
func (c *Controller) saveSelection() *template.Template {
	defer func() {
		c.selection.CancelSelection()
		c.publishSelection()
	}()

	a, b, ok := c.selection.Corners()
	if !ok {
		return nil
	}

	t, err := c.library.SaveSelection(c.world, a, b)
	if err != nil {
		if !errors.Is(err, template.ErrEmptyTemplate) {
			c.logger.Error("Ошибка сохранения шаблона: %v", err)
		}
		return nil
	}

	slot := c.hotbar.Add(TemplateItem(t))
	c.logger.Info("Шаблон %s добавлен в слот %d", t.Name(), slot+1)
	c.recorder.TemplateSaved()
	c.publish(EventTemplateSaved, TemplateSavedEvent{
		ID:     t.ID().String(),
		Name:   t.Name(),
		Blocks: t.Len(),
		Size:   t.Size(),
	})
	return t
}

// Frame возвращает снимок состояния для отрисовки
func (c *Controller) Frame() Frame {
	f := Frame{
		Blocks:    c.world.Blocks(),
		Target:    c.target,
		HasTarget: c.hasTarget,
		Selection: c.selection.State(),
		Slot:      c.hotbar.Selected(),
		Item:      c.hotbar.SelectedItem(),
		Camera:    c.camera.Position(),
		Front:     c.camera.Front(),
	}

	lo, okLo := c.selection.CurrentMin()
	hi, okHi := c.selection.CurrentMax()
	if okLo && okHi {
		f.SelectionMin, f.SelectionMax, f.HasSelectionArea = lo, hi, true
	}
	return f
}

func (c *Controller) publishSelection() {
	ev := SelectionEvent{State: c.selection.State().String()}
	if lo, ok := c.selection.CurrentMin(); ok {
		ev.Min = &lo
	}
	if hi, ok := c.selection.CurrentMax(); ok {
		ev.Max = &hi
	}
	c.publish(EventSelectionChanged, ev)
}

// publish отправляет событие в шину. Ошибки шины не влияют на мир.
func (c *Controller) publish(eventType string, payload any) {
	ev, err := eventbus.NewEnvelope(EventSource, eventType, payload)
	if err != nil {
		c.logger.Warn("Событие %s не создано: %v", eventType, err)
		return
	}

	if c.bus != nil {
		err = c.bus.Publish(context.Background(), ev)
	} else {
		err = eventbus.Publish(context.Background(), ev)
	}
	if err != nil {
		c.logger.Warn("Событие %s не опубликовано: %v", eventType, err)
	}
}
