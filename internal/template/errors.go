package template

import "errors"

var (
	// ErrEmptyTemplate возвращается при попытке сохранить шаблон без блоков
	ErrEmptyTemplate = errors.New("в выбранной области нет блоков")

	// ErrCorruptBlob возвращается, если закодированный шаблон не удалось разобрать
	ErrCorruptBlob = errors.New("повреждённые данные шаблона")

	// ErrNotFound возвращается, если шаблон с указанным ID отсутствует в библиотеке
	ErrNotFound = errors.New("шаблон не найден")
)
