// File: handlers/bundle.go
package handlers

import (
	"brightsmile/services/admin"
)

// HandlerBundle aggregates the HTTP handlers so route registration takes a
// single dependency.
type HandlerBundle struct {
	Booking      *BookingHandler
	Availability *AvailabilityHandler
	Catalog      *CatalogHandler
	Appointments *AppointmentHandler
	Content      *ContentHandler
	Auth         *AuthHandler
	Storage      *StorageHandler

	// AuthSvc backs the admin auth middleware.
	AuthSvc admin.AuthService
}
