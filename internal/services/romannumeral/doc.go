// Package romannumeral hosts the conversion API.
//
// The service exposes a single conversion endpoint plus health and metrics:
//
//	GET /romannumeral?query=<n>  convert n, JSON {"input","output"} or 400 text
//	GET /metrics                 Prometheus exposition
//	GET /health                  liveness
//
// Query values are parsed as base-10 decimal numbers. Text that is not a
// number yields MessageInvalidNumber; numbers that are fractional or outside
// [roman.MinValue, roman.MaxValue] yield MessageOutOfRange. Both respond 400.
package romannumeral
