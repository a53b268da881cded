// Package console исполняет текстовые команды управления игроком:
// каждая команда превращается в один или несколько тиков контроллера.
package console

import (
	"bufio"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/annel0/blockworld/internal/game"
	"github.com/annel0/blockworld/internal/palette"
	"github.com/annel0/blockworld/internal/template"
	"github.com/annel0/blockworld/internal/world/block"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrUnknownCommand неизвестная команда
var ErrUnknownCommand = errors.New("неизвестная команда")

// TickObserver получает длительность каждого тика (реализуется пакетом metrics)
type TickObserver interface {
	ObserveTick(d time.Duration)
}

// Runner исполняет команды над контроллером с фиксированным шагом dt
type Runner struct {
	ctrl     *game.Controller
	out      io.Writer
	dt       float32
	observer TickObserver
	ticks    int
}

// NewRunner создаёт исполнитель команд. tickRate задаёт число тиков в секунду.
func NewRunner(ctrl *game.Controller, out io.Writer, tickRate int) *Runner {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Runner{
		ctrl: ctrl,
		out:  out,
		dt:   1 / float32(tickRate),
	}
}

// SetObserver подключает наблюдателя длительности тиков
func (r *Runner) SetObserver(o TickObserver) { r.observer = o }

// Ticks возвращает число выполненных тиков
func (r *Runner) Ticks() int { return r.ticks }

// Run читает команды построчно до конца ввода или отмены ctx.
// Пустые строки и строки, начинающиеся с '#', пропускаются.
func (r *Runner) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++
		if err := r.Exec(scanner.Text()); err != nil {
			return fmt.Errorf("строка %d: %w", lineNo, err)
		}
	}
	return scanner.Err()
}

// Exec исполняет одну команду
func (r *Runner) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	fields := strings.Fields(line)
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "look":
		v, err := floats(args, 2, 2)
		if err != nil {
			return err
		}
		r.tick(game.Input{LookX: v[0], LookY: v[1]})

	case "aim":
		v, err := floats(args, 2, 2)
		if err != nil {
			return err
		}
		r.ctrl.Camera().SetRotation(v[0], v[1])
		r.tick(game.Input{})

	case "pos":
		v, err := floats(args, 3, 3)
		if err != nil {
			return err
		}
		r.ctrl.Camera().SetPosition(mgl32.Vec3{v[0], v[1], v[2]})
		r.tick(game.Input{})

	case "move":
		v, err := floats(args, 3, 4)
		if err != nil {
			return err
		}
		seconds := r.dt
		if len(v) == 4 {
			seconds = v[3]
		}
		for n := ticksFor(seconds, r.dt); n > 0; n-- {
			r.tick(game.Input{Forward: v[0], Right: v[1], Up: v[2]})
		}

	case "slot":
		n, err := intArg(args)
		if err != nil {
			return err
		}
		r.tick(game.Input{Slot: n})

	case "scroll":
		v, err := floats(args, 1, 1)
		if err != nil {
			return err
		}
		r.tick(game.Input{Scroll: float64(v[0])})

	case "assign":
		n, err := intArg(args)
		if err != nil {
			return err
		}
		r.tick(game.Input{Assign: n})

	case "primary":
		r.click(game.Input{Primary: true})

	case "secondary":
		r.click(game.Input{Secondary: true})

	case "select":
		r.tick(game.Input{ToggleSelection: true})

	case "capture":
		res := r.tick(game.Input{Capture: true})
		if res.Saved != nil {
			fmt.Fprintf(r.out, "saved %s: %d blocks, size %v\n", res.Saved.Name(), res.Saved.Len(), res.Saved.Size())
		} else {
			fmt.Fprintln(r.out, "nothing saved")
		}

	case "tick":
		n := 1
		if len(args) > 0 {
			var err error
			if n, err = intArg(args); err != nil {
				return err
			}
		}
		for ; n > 0; n-- {
			r.tick(game.Input{})
		}

	case "dump":
		r.dump()

	case "templates":
		for i, t := range r.ctrl.Library().List() {
			fmt.Fprintf(r.out, "%d. %s %s: %d blocks, size %v\n", i+1, t.Name(), t.ID(), t.Len(), t.Size())
		}

	case "export":
		n, err := intArg(args)
		if err != nil {
			return err
		}
		return r.export(n)

	case "import":
		if len(args) != 1 {
			return fmt.Errorf("import: ожидается одна строка base64")
		}
		return r.importTemplate(args[0])

	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}
	return nil
}

// tick выполняет один тик контроллера
func (r *Runner) tick(in game.Input) game.Result {
	start := time.Now()
	res := r.ctrl.Update(r.dt, in)
	if r.observer != nil {
		r.observer.ObserveTick(time.Since(start))
	}
	r.ticks++
	return res
}

// click удерживает кнопку один тик и ждёт окончания задержки клика,
// чтобы следующая команда сработала сразу.
func (r *Runner) click(in game.Input) {
	res := r.tick(in)
	if !res.HasTarget {
		fmt.Fprintln(r.out, "no target")
	}
	for _, a := range res.Actions {
		switch a {
		case game.ActionPlaceBlock:
			fmt.Fprintf(r.out, "%s %v\n", a, res.Target.Adjacent())
		case game.ActionPlaceTemplate:
			fmt.Fprintf(r.out, "%s %v (%d blocks)\n", a, res.Target.Adjacent(), res.Placed)
		default:
			fmt.Fprintf(r.out, "%s %v\n", a, res.Target.Block)
		}
	}
	for r.ctrl.Cooldown() > 0 {
		r.tick(game.Input{})
	}
}

func (r *Runner) dump() {
	f := r.ctrl.Frame()

	counts := make(map[block.Material]int)
	for _, m := range f.Blocks {
		counts[m]++
	}
	materials := make([]block.Material, 0, len(counts))
	for m := range counts {
		materials = append(materials, m)
	}
	sort.Slice(materials, func(i, j int) bool { return materials[i] < materials[j] })

	fmt.Fprintf(r.out, "blocks: %d\n", len(f.Blocks))
	for _, m := range materials {
		fmt.Fprintf(r.out, "  %s %s (%s): %d\n", m, palette.Name(m), palette.Hex(m), counts[m])
	}

	p := f.Camera
	fmt.Fprintf(r.out, "camera: (%.2f, %.2f, %.2f) yaw %.1f pitch %.1f\n",
		p.X(), p.Y(), p.Z(), r.ctrl.Camera().Yaw(), r.ctrl.Camera().Pitch())

	if f.HasTarget {
		m := f.Blocks[f.Target.Block]
		fmt.Fprintf(r.out, "target: %v %s normal %v face %s distance %.1f\n",
			f.Target.Block, m, f.Target.Normal, palette.Shade(m, f.Target.Normal).Hex(), f.Target.Distance)
	} else {
		fmt.Fprintln(r.out, "target: none")
	}

	if f.HasSelectionArea {
		fmt.Fprintf(r.out, "selection: %s %v-%v\n", f.Selection, f.SelectionMin, f.SelectionMax)
	} else {
		fmt.Fprintf(r.out, "selection: %s\n", f.Selection)
	}
	fmt.Fprintf(r.out, "slot: %d %s\n", f.Slot+1, f.Item)
}

func (r *Runner) export(n int) error {
	list := r.ctrl.Library().List()
	if n < 1 || n > len(list) {
		return fmt.Errorf("export: %w: №%d", template.ErrNotFound, n)
	}

	data, err := template.Encode(list[n-1])
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, base64.StdEncoding.EncodeToString(data))
	return nil
}

func (r *Runner) importTemplate(s string) error {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return fmt.Errorf("import: %w: %v", template.ErrCorruptBlob, err)
	}
	t, err := template.Decode(data)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	if err := r.ctrl.Library().Add(t); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	fmt.Fprintf(r.out, "imported %s: %d blocks\n", t.Name(), t.Len())
	return nil
}

func floats(args []string, min, max int) ([]float32, error) {
	if len(args) < min || len(args) > max {
		return nil, fmt.Errorf("ожидается от %d до %d чисел, получено %d", min, max, len(args))
	}
	out := make([]float32, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return nil, fmt.Errorf("некорректное число %q: %w", a, err)
		}
		out[i] = float32(v)
	}
	return out, nil
}

func intArg(args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("ожидается одно целое число")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("некорректное число %q: %w", args[0], err)
	}
	return n, nil
}

// ticksFor число тиков длительностью dt, покрывающих seconds (не меньше одного)
func ticksFor(seconds, dt float32) int {
	n := int(seconds/dt + 0.5)
	if n < 1 {
		n = 1
	}
	return n
}
