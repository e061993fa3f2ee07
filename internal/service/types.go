// Package service defines the backend-agnostic interface for task operations.
package service

// Task represents a single task item.
// ID is assigned by the backend and is opaque to the client.
type Task struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
}
