package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"workout-tracker/internal/training"
)

// Printer writes workout summaries and driver notices to a terminal or stream.
// Summary lines are written verbatim; only notices are styled.
type Printer struct {
	w      io.Writer
	styles styles
}

// NewPrinter creates a Printer writing to w
func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		w:      w,
		styles: newStyles(lipgloss.NewRenderer(w)),
	}
}

// Header prints a title line announcing how many packages will be processed
func (p *Printer) Header(packages int) error {
	title := p.styles.header.Render("Результаты тренировок")
	count := p.styles.muted.Render(fmt.Sprintf("(пакетов: %d)", packages))
	_, err := fmt.Fprintln(p.w, title+" "+count)
	return err
}

// Summary prints the formatted summary line for one workout
func (p *Printer) Summary(info training.InfoMessage) error {
	_, err := fmt.Fprintln(p.w, info.Message())
	return err
}

// NotFound reports a package whose code matches no known workout type
func (p *Printer) NotFound(code string, known []string) error {
	msg := fmt.Sprintf("Тип тренировки %q не найден. Доступные типы: %s", code, strings.Join(known, ", "))
	_, err := fmt.Fprintln(p.w, p.styles.warning.Render(msg))
	return err
}
