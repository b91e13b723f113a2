package sink

import (
	"github.com/kbukum/rxkit/logger"
)

// Printer logs each signal it receives at info level, or error level for
// Error.
type Printer struct {
	log  *logger.Logger
	name string
}

// NewPrinter creates a Printer logging through log. A nil log uses the
// "sink" component logger.
func NewPrinter(log *logger.Logger, name string) *Printer {
	if log == nil {
		log = logger.Get("sink")
	}
	return &Printer{log: log, name: name}
}

func (p *Printer) Next(value any) {
	p.log.Info("next", logger.Fields(
		logger.FieldObserver, p.name,
		logger.FieldValue, value,
	))
}

func (p *Printer) Error(err error) {
	p.log.Error("error", logger.Fields(
		logger.FieldObserver, p.name,
		logger.FieldError, err.Error(),
	))
}

func (p *Printer) Complete() {
	p.log.Info("complete", logger.Fields(
		logger.FieldObserver, p.name,
	))
}
