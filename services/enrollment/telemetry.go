package enrollment

import "go.opentelemetry.io/otel"

var tracer = otel.Tracer("services/enrollment")
