package logger

// Logger is the structured logger used across the service.
// Implementations live in sub-packages (zap_adapter).
type Logger interface {
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

type Field struct {
	Key   string
	Value any
}

func NewField(key string, value any) Field {
	return Field{
		Key:   key,
		Value: value,
	}
}

// Nop discards everything. Used in tests and tools that do not care about logs.
type Nop struct{}

func NewNop() *Nop {
	return &Nop{}
}

func (Nop) Info(string, ...Field) {}

func (Nop) Warn(string, ...Field) {}

func (Nop) Error(string, ...Field) {}

func (n Nop) With(...Field) Logger {
	return n
}
