// Package utils provides general-purpose helper utilities used across
// different parts of the application.
package utils

import (
	"github.com/google/uuid"

	"github.com/MKhiriev/go-wallet-keeper/models"
)

// UUIDGenerator issues identifiers for vault entries.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, or a random UUIDv4 if the clock
// source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// NewEntryID returns "<platform>_<uuid>", unique within any wallet's list
// and readable in logs.
func (g *UUIDGenerator) NewEntryID(platform models.Platform) string {
	return string(platform) + "_" + g.Generate()
}
