// Package client runs the interactive terminal client: the bubbletea program
// and the background auto-sync worker share one lifecycle and stop together.
package client
