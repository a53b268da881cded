package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// LogLevel определяет уровни логирования
type LogLevel int

const (
	TRACE LogLevel = iota
	DEBUG
	INFO
	WARN
	ERROR
)

// String возвращает строковое представление уровня логирования
func (l LogLevel) String() string {
	switch l {
	case TRACE:
		return "TRACE"
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel разбирает уровень логирования из строки (без учёта регистра)
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return TRACE, nil
	case "DEBUG":
		return DEBUG, nil
	case "", "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	}
	return INFO, fmt.Errorf("неизвестный уровень логирования %q", s)
}

// Цвета меток уровней в консоли
var levelColors = map[LogLevel]*color.Color{
	TRACE: color.New(color.FgHiBlack),
	DEBUG: color.New(color.FgCyan),
	INFO:  color.New(color.FgGreen),
	WARN:  color.New(color.FgYellow),
	ERROR: color.New(color.FgRed, color.Bold),
}

// Logger представляет логгер компонента с выводом в консоль и (опционально) в файл
type Logger struct {
	component       string
	consoleLogger   *log.Logger
	fileLogger      *log.Logger
	file            *os.File
	minConsoleLevel LogLevel
	minFileLevel    LogLevel
	mu              sync.Mutex
}

// Глобальные настройки, применяемые к новым логгерам
var (
	settingsMu     sync.RWMutex
	consoleLevel   = INFO
	logDir         string // Пустая строка отключает запись в файлы
	consoleOutput  io.Writer = os.Stdout
	defaultLogger            = newConsoleLogger("", os.Stdout, INFO)
	defaultLoggerM sync.RWMutex
)

// Configure задаёт минимальный уровень консоли и директорию файловых логов
// для логгеров, создаваемых после вызова. dir == "" отключает файлы.
func Configure(level LogLevel, dir string) {
	settingsMu.Lock()
	consoleLevel = level
	logDir = dir
	settingsMu.Unlock()

	defaultLoggerM.Lock()
	defaultLogger.minConsoleLevel = level
	defaultLoggerM.Unlock()

	GetLoggerManager().setConsoleLevel(level)
}

// SetConsoleOutput перенаправляет консольный вывод новых логгеров (используется в тестах)
func SetConsoleOutput(w io.Writer) {
	settingsMu.Lock()
	consoleOutput = w
	settingsMu.Unlock()
}

func newConsoleLogger(component string, out io.Writer, level LogLevel) *Logger {
	prefix := ""
	if component != "" {
		prefix = "[" + component + "] "
	}
	return &Logger{
		component:       component,
		consoleLogger:   log.New(out, prefix, log.LstdFlags),
		minConsoleLevel: level,
		minFileLevel:    DEBUG,
	}
}

// NewLogger создаёт логгер компонента. Если задана директория логов,
// дополнительно открывается файл <dir>/<component>_<timestamp>.log.
func NewLogger(component string) (*Logger, error) {
	settingsMu.RLock()
	dir, level, out := logDir, consoleLevel, consoleOutput
	settingsMu.RUnlock()

	logger := newConsoleLogger(component, out, level)
	if dir == "" {
		return logger, nil
	}

	// Создаем директорию для логов
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("ошибка создания директории %s: %w", dir, err)
	}

	// Создаем файл для логов с временной меткой
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := filepath.Join(dir, fmt.Sprintf("%s_%s.log", component, timestamp))

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания файла логов: %w", err)
	}

	logger.file = file
	logger.fileLogger = log.New(file, "["+component+"] ", log.LstdFlags)
	return logger, nil
}

// InitDefaultLogger создаёт логгер по умолчанию для пакетных функций Info/Debug/...
func InitDefaultLogger(component string) error {
	logger, err := NewLogger(component)
	if err != nil {
		return err
	}

	defaultLoggerM.Lock()
	defaultLogger = logger
	defaultLoggerM.Unlock()
	return nil
}

// CloseDefaultLogger закрывает файл логгера по умолчанию
func CloseDefaultLogger() {
	defaultLoggerM.RLock()
	logger := defaultLogger
	defaultLoggerM.RUnlock()

	if logger != nil {
		logger.Close()
	}
}

// Close закрывает файл логгера, если он открыт
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.fileLogger = nil
	return err
}

// Trace логирует сообщение уровня TRACE
func (l *Logger) Trace(format string, args ...interface{}) {
	l.logMessage(TRACE, format, args...)
}

// Debug логирует сообщение уровня DEBUG
func (l *Logger) Debug(format string, args ...interface{}) {
	l.logMessage(DEBUG, format, args...)
}

// Info логирует сообщение уровня INFO
func (l *Logger) Info(format string, args ...interface{}) {
	l.logMessage(INFO, format, args...)
}

// Warn логирует сообщение уровня WARN
func (l *Logger) Warn(format string, args ...interface{}) {
	l.logMessage(WARN, format, args...)
}

// Error логирует сообщение уровня ERROR
func (l *Logger) Error(format string, args ...interface{}) {
	l.logMessage(ERROR, format, args...)
}

// logMessage внутренняя функция для логирования
func (l *Logger) logMessage(level LogLevel, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.fileLogger != nil && level >= l.minFileLevel {
		l.fileLogger.Printf("[%s] %s", level, message)
	}

	if level >= l.minConsoleLevel {
		tag := "[" + level.String() + "]"
		if c, ok := levelColors[level]; ok {
			tag = c.Sprint(tag)
		}
		l.consoleLogger.Printf("%s %s", tag, message)
	}
}

func current() *Logger {
	defaultLoggerM.RLock()
	defer defaultLoggerM.RUnlock()
	return defaultLogger
}

// Trace логирует сообщение уровня TRACE в логгер по умолчанию
func Trace(format string, args ...interface{}) { current().Trace(format, args...) }

// Debug логирует сообщение уровня DEBUG в логгер по умолчанию
func Debug(format string, args ...interface{}) { current().Debug(format, args...) }

// Info логирует сообщение уровня INFO в логгер по умолчанию
func Info(format string, args ...interface{}) { current().Info(format, args...) }

// Warn логирует сообщение уровня WARN в логгер по умолчанию
func Warn(format string, args ...interface{}) { current().Warn(format, args...) }

// Error логирует сообщение уровня ERROR в логгер по умолчанию
func Error(format string, args ...interface{}) { current().Error(format, args...) }
