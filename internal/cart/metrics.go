package cart

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	opGet     = "get"
	opAdd     = "add"
	opReplace = "replace"
	opRemove  = "remove"
	opClear   = "clear"
)

type Metrics struct {
	Operations *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "storefront",
				Subsystem: "cart",
				Name:      "operations_total",
				Help:      "Cart operations by outcome",
			},
			[]string{"op", "outcome"},
		),
	}
	reg.MustRegister(m.Operations)
	return m
}

func (m *Metrics) observe(op string, err error) {
	if m == nil {
		return
	}
	m.Operations.WithLabelValues(op, outcome(err)).Inc()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidItem):
		return "invalid"
	case errors.Is(err, ErrProductNotFound), errors.Is(err, ErrCartNotFound), errors.Is(err, ErrItemNotInCart):
		return "not_found"
	default:
		return "error"
	}
}
