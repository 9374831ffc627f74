// Package server runs the vault API listeners and stops them in order on
// SIGTERM, SIGINT or SIGQUIT.
package server
