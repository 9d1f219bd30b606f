// Package httpstate tracks a process-wide snapshot of the most recent
// HTTP exchange: the response headers and the raw request Cookie header.
//
// Flag providers that source their value from headers or cookies read the
// snapshot instead of holding a request reference. The snapshot is fed
// either by the Capture gin middleware or by a registered RefreshFunc
// that is pulled on demand before each header evaluation.
package httpstate
