package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contadores Prometheus del registro de clientes.
type Metrics struct {
	CustomersCreated    prometheus.Counter
	ValidationFailures  *prometheus.CounterVec
	PersistenceFailures prometheus.Counter
}

// New crea y registra las métricas en reg. Usar prometheus.NewRegistry() en tests
// para no chocar con el registro global.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		CustomersCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "clientes_customers_created_total",
			Help: "Total de clientes registrados",
		}),
		ValidationFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "clientes_customer_validation_failures_total",
			Help: "Borradores rechazados por validación, por campo",
		}, []string{"field"}),
		PersistenceFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "clientes_customer_persistence_failures_total",
			Help: "Inserciones fallidas en el almacén",
		}),
	}
}

// IncCustomersCreated suma un cliente registrado.
func (m *Metrics) IncCustomersCreated() { m.CustomersCreated.Inc() }

// IncValidationFailure suma un rechazo de validación para field.
func (m *Metrics) IncValidationFailure(field string) { m.ValidationFailures.WithLabelValues(field).Inc() }

// IncPersistenceFailure suma una inserción fallida.
func (m *Metrics) IncPersistenceFailure() { m.PersistenceFailures.Inc() }
