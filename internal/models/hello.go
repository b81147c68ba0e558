// Package models defines the request and response types for every API
// operation. Request structs carry the boundary validation rules as
// validate tags; response structs pin the wire-level JSON field names.
package models

import "time"

// GreetRequest is the (empty) input of GET /api/hello.
type GreetRequest struct{}

// GreetResponse is the payload of GET /api/hello.
type GreetResponse struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// GreetNameRequest is the input of GET /api/hello/{name}. The name must be
// 1-100 characters and not whitespace-only; it is passed through to the
// greeting verbatim, with no trimming or escaping.
type GreetNameRequest struct {
	Name string `path:"name" validate:"required,notblank,max=100"`
}

// GreetNameResponse is the payload of GET /api/hello/{name}.
type GreetNameResponse struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
