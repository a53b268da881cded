package template

import (
	"fmt"

	"github.com/annel0/blockworld/internal/logging"
	"github.com/annel0/blockworld/internal/vec"
	"github.com/annel0/blockworld/internal/world/block"
	"github.com/google/uuid"
)

// NamePrefix префикс автоматически выдаваемых имён шаблонов
const NamePrefix = "Structure_"

// Library хранит сохранённые шаблоны в порядке добавления.
// Пустые шаблоны в библиотеку не попадают.
type Library struct {
	templates []*Template
	byID      map[uuid.UUID]*Template
	logger    *logging.Logger
}

// NewLibrary создаёт пустую библиотеку шаблонов
func NewLibrary() *Library {
	return &Library{
		byID:   make(map[uuid.UUID]*Template),
		logger: logging.GetComponentLogger(logging.ComponentTemplate),
	}
}

// NextName возвращает имя, которое получит следующий сохранённый шаблон
func (l *Library) NextName() string {
	return fmt.Sprintf("%s%d", NamePrefix, len(l.templates)+1)
}

// SaveSelection захватывает область между углами a и b под следующим
// автоматическим именем и сохраняет её. Пустой захват отбрасывается
// с ошибкой ErrEmptyTemplate.
func (l *Library) SaveSelection(w block.BlockReader, a, b vec.Vec3) (*Template, error) {
	t := Capture(w, a, b, l.NextName())
	if err := l.Add(t); err != nil {
		l.logger.Warn("Область %v-%v не сохранена: %v", a, b, err)
		return nil, err
	}

	l.logger.Info("Шаблон сохранён: %s (%d блоков, размер %v)", t.Name(), t.Len(), t.Size())
	return t, nil
}

// Add добавляет готовый шаблон в библиотеку
func (l *Library) Add(t *Template) error {
	if t == nil || t.IsEmpty() {
		return ErrEmptyTemplate
	}
	if _, exists := l.byID[t.ID()]; exists {
		return nil
	}

	l.templates = append(l.templates, t)
	l.byID[t.ID()] = t
	return nil
}

// Get возвращает шаблон по ID
func (l *Library) Get(id uuid.UUID) (*Template, error) {
	t, ok := l.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return t, nil
}

// FindByName возвращает первый шаблон с указанным именем
func (l *Library) FindByName(name string) (*Template, bool) {
	for _, t := range l.templates {
		if t.Name() == name {
			return t, true
		}
	}
	return nil, false
}

// List возвращает шаблоны в порядке сохранения
func (l *Library) List() []*Template {
	out := make([]*Template, len(l.templates))
	copy(out, l.templates)
	return out
}

// Len возвращает количество сохранённых шаблонов
func (l *Library) Len() int {
	return len(l.templates)
}
