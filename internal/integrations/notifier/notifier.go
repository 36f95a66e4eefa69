package notifier

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// Sender драйвер отправки уведомлений (emailjs, rabbitmq)
type Sender interface {
	Send(ctx context.Context, templateID string, vars map[string]string) error
}

// Nop драйвер "none": уведомления отбрасываются
type Nop struct{}

func (Nop) Send(context.Context, string, map[string]string) error { return nil }

// Instrumented считает отправки драйвера в notifications_total{driver,result}
type Instrumented struct {
	next    Sender
	driver  string
	counter *prometheus.CounterVec
}

// NewInstrumented оборачивает драйвер счетчиком; при counter == nil возвращает драйвер как есть
func NewInstrumented(next Sender, driver string, counter *prometheus.CounterVec) Sender {
	if counter == nil {
		return next
	}
	return &Instrumented{next: next, driver: driver, counter: counter}
}

func (n *Instrumented) Send(ctx context.Context, templateID string, vars map[string]string) error {
	err := n.next.Send(ctx, templateID, vars)

	result := "ok"
	if err != nil {
		result = "error"
	}
	n.counter.WithLabelValues(n.driver, result).Inc()

	return err
}
