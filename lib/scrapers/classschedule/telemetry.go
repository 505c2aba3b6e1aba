package classschedule

import "go.opentelemetry.io/otel"

var tracer = otel.Tracer("scrapers/classschedule")
