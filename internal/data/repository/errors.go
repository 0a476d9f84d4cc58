// Package repository defines sentinel errors shared across stores so that
// services and handlers can map failures to HTTP status codes with
// errors.Is instead of matching message strings.
package repository

import "errors"

// ErrNotFound is returned when a referenced entity does not exist.
// Handlers translate it into HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrEmailTaken is returned when registering with an email that already
// belongs to a user. Handlers translate it into HTTP 400.
var ErrEmailTaken = errors.New("email is occupied")

// ErrSeatTaken is returned when an order would reserve a seat that is
// already reserved for the same session. Handlers translate it into
// HTTP 409.
var ErrSeatTaken = errors.New("seat already reserved")
