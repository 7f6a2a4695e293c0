package behaviors

import (
	"context"
	"reflect"
	"time"

	"github.com/glimte/mediate-go/mediator"
)

// MetricsCollector defines the interface for collecting dispatch metrics
type MetricsCollector interface {
	IncrementRequestCount(requestType string)
	RecordProcessingTime(requestType string, duration time.Duration)
	IncrementErrorCount(requestType string)
}

// MetricsBehavior collects metrics about request processing
type MetricsBehavior struct {
	collector MetricsCollector
}

// NewMetricsBehavior creates a new metrics behavior
func NewMetricsBehavior(collector MetricsCollector) *MetricsBehavior {
	return &MetricsBehavior{collector: collector}
}

// Handle implements mediator.Behavior
func (b *MetricsBehavior) Handle(ctx context.Context, request any, next mediator.Next) (any, error) {
	requestType := reflect.TypeOf(request).String()
	b.collector.IncrementRequestCount(requestType)

	start := time.Now()
	response, err := next(ctx)
	b.collector.RecordProcessingTime(requestType, time.Since(start))

	if err != nil {
		b.collector.IncrementErrorCount(requestType)
	}

	return response, err
}

// Name implements mediator.Behavior
func (b *MetricsBehavior) Name() string {
	return "MetricsBehavior"
}
