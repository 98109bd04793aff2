// Package http serves the sync API: account signup and login, and the
// encrypted blob store clients push to and pull from. Blob keys are scoped
// to the authenticated user before they reach the service layer.
package http
