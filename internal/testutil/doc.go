// Package testutil contains stub collaborators used across tests to reduce
// boilerplate when exercising the experiment runner: a simulator that records
// its lifecycle and a trial function that replays scripted outcomes. They are
// not intended for production usage.
package testutil
