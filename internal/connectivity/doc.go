// Package connectivity tracks whether the remote delivery service is
// reachable.
//
// A [Monitor] holds the current boolean signal, polls a [Prober] in the
// background and emits one [models.ConnectivityEvent] per edge. The sync job
// subscribes to online edges to start a sync pass as soon as the device
// reconnects.
package connectivity
