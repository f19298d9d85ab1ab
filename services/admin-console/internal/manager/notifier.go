package manager

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"
)

// Notifier surfaces messages to the user. Calls must not block.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// ConsoleNotifier prints toasts to a terminal and mirrors them to the log.
type ConsoleNotifier struct {
	mu     sync.Mutex
	out    io.Writer
	logger *zap.Logger
}

func NewConsoleNotifier(out io.Writer, logger *zap.Logger) *ConsoleNotifier {
	return &ConsoleNotifier{out: out, logger: logger}
}

func (n *ConsoleNotifier) Success(msg string) {
	n.logger.Info("notify", zap.String("level", "success"), zap.String("message", msg))
	n.print("✔", msg)
}

func (n *ConsoleNotifier) Error(msg string) {
	n.logger.Warn("notify", zap.String("level", "error"), zap.String("message", msg))
	n.print("✖", msg)
}

func (n *ConsoleNotifier) print(icon, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.out, "%s %s\n", icon, msg)
}
