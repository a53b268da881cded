package template

import (
	"encoding/json"
	"fmt"

	"github.com/annel0/blockworld/internal/vec"
	"github.com/annel0/blockworld/internal/world/block"
	"github.com/klauspost/compress/zstd"
)

// blobVersion версия формата закодированного шаблона
const blobVersion = 1

// blob формат шаблона для обмена (JSON, сжатый zstd)
type blob struct {
	Version int         `json:"v"`
	Name    string      `json:"name"`
	Entries []blobEntry `json:"entries"`
}

type blobEntry struct {
	Offset   [3]int         `json:"o"`
	Material block.Material `json:"m"`
}

// Кодировщик и декодировщик zstd безопасны для конкурентного EncodeAll/DecodeAll
var (
	encoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	decoder, _ = zstd.NewReader(nil, zstd.WithDecoderMaxMemory(64<<20))
)

// Encode кодирует шаблон в компактный набор байт для копирования между сессиями
func Encode(t *Template) ([]byte, error) {
	b := blob{
		Version: blobVersion,
		Name:    t.Name(),
		Entries: make([]blobEntry, 0, t.Len()),
	}
	for _, e := range t.entries {
		b.Entries = append(b.Entries, blobEntry{
			Offset:   [3]int{e.Offset.X, e.Offset.Y, e.Offset.Z},
			Material: e.Material,
		})
	}

	data, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("ошибка сериализации шаблона %s: %w", t.Name(), err)
	}

	return encoder.EncodeAll(data, nil), nil
}

// Decode восстанавливает шаблон из байт, полученных от Encode.
// Декодированный шаблон получает новый ID.
func Decode(data []byte) (*Template, error) {
	raw, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptBlob, err)
	}

	var b blob
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptBlob, err)
	}
	if b.Version != blobVersion {
		return nil, fmt.Errorf("%w: неподдерживаемая версия %d", ErrCorruptBlob, b.Version)
	}

	entries := make([]Entry, 0, len(b.Entries))
	seen := make(map[vec.Vec3]struct{}, len(b.Entries))
	for i, be := range b.Entries {
		off := vec.Vec3{X: be.Offset[0], Y: be.Offset[1], Z: be.Offset[2]}
		if off.X < 0 || off.Y < 0 || off.Z < 0 {
			return nil, fmt.Errorf("%w: отрицательное смещение %v в записи %d", ErrCorruptBlob, off, i)
		}
		if !be.Material.IsValid() {
			return nil, fmt.Errorf("%w: недопустимый материал в записи %d", ErrCorruptBlob, i)
		}
		if _, dup := seen[off]; dup {
			return nil, fmt.Errorf("%w: повторное смещение %v", ErrCorruptBlob, off)
		}
		seen[off] = struct{}{}
		entries = append(entries, Entry{Offset: off, Material: be.Material})
	}

	return New(b.Name, entries), nil
}
