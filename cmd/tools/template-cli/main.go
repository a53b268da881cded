package main

import (
	"encoding/base64"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/annel0/blockworld/internal/palette"
	"github.com/annel0/blockworld/internal/template"
	"github.com/annel0/blockworld/internal/vec"
	"github.com/annel0/blockworld/internal/world/block"
)

func main() {
	var (
		command = flag.String("cmd", "info", "Command: info, entries, layers")
		blob    = flag.String("blob", "", "Template blob in base64 (stdin if empty)")
	)
	flag.Parse()

	data := *blob
	if data == "" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("❌ Failed to read stdin: %v", err)
		}
		data = string(raw)
	}

	t, err := decodeBlob(data)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	if err := run(*command, t, os.Stdout); err != nil {
		log.Fatalf("❌ %v", err)
	}
}

// decodeBlob разбирает строку, напечатанную командой export
func decodeBlob(s string) (*template.Template, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("invalid base64: %w", err)
	}
	return template.Decode(data)
}

func run(command string, t *template.Template, out io.Writer) error {
	switch command {
	case "info":
		showInfo(t, out)
	case "entries":
		showEntries(t, out)
	case "layers":
		showLayers(t, out)
	default:
		return fmt.Errorf("unknown command: %s (available: info, entries, layers)", command)
	}
	return nil
}

// showInfo выводит размер шаблона и число блоков каждого материала
func showInfo(t *template.Template, out io.Writer) {
	fmt.Fprintf(out, "📦 %s\n", t.Name())
	fmt.Fprintf(out, "Blocks: %d\n", t.Len())
	fmt.Fprintf(out, "Size: %v\n", t.Size())

	counts := make(map[block.Material]int)
	for _, e := range t.Entries() {
		counts[e.Material]++
	}
	materials := make([]block.Material, 0, len(counts))
	for m := range counts {
		materials = append(materials, m)
	}
	sort.Slice(materials, func(i, j int) bool { return materials[i] < materials[j] })

	for _, m := range materials {
		fmt.Fprintf(out, "  %s (%s %s): %d\n", m, palette.Name(m), palette.Hex(m), counts[m])
	}
}

func showEntries(t *template.Template, out io.Writer) {
	for _, e := range t.Entries() {
		fmt.Fprintf(out, "%v %s\n", e.Offset, e.Material)
	}
}

// layerSymbols символы материалов для послойного вида сверху
var layerSymbols = map[block.Material]byte{
	block.Grass: 'G',
	block.Dirt:  'D',
	block.Stone: 'S',
	block.Wood:  'W',
	block.Sand:  'A',
	block.Water: '~',
}

// showLayers печатает шаблон по слоям снизу вверх: строки по z, столбцы по x
func showLayers(t *template.Template, out io.Writer) {
	size := t.Size()
	cells := make(map[vec.Vec3]block.Material, t.Len())
	for _, e := range t.Entries() {
		cells[e.Offset] = e.Material
	}

	for y := 0; y < size.Y; y++ {
		fmt.Fprintf(out, "y=%d\n", y)
		row := make([]byte, size.X)
		for z := 0; z < size.Z; z++ {
			for x := 0; x < size.X; x++ {
				row[x] = '.'
				if m, ok := cells[vec.Vec3{X: x, Y: y, Z: z}]; ok {
					row[x] = layerSymbols[m]
				}
			}
			fmt.Fprintf(out, "%s\n", row)
		}
	}
}
