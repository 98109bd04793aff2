// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// Project groups the environments of one application.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EnvironmentType classifies an environment. Anything that is not one of
// the well-known stages is kept as a custom type.
type EnvironmentType string

const (
	EnvironmentDevelopment EnvironmentType = "development"
	EnvironmentStaging     EnvironmentType = "staging"
	EnvironmentProduction  EnvironmentType = "production"
	EnvironmentCustom      EnvironmentType = "custom"
)

// ParseEnvironmentType normalises user input ("dev", "Prod", ...) into an
// [EnvironmentType]. Unknown values map to [EnvironmentCustom].
func ParseEnvironmentType(s string) EnvironmentType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "development", "dev":
		return EnvironmentDevelopment
	case "staging", "stage":
		return EnvironmentStaging
	case "production", "prod":
		return EnvironmentProduction
	default:
		return EnvironmentCustom
	}
}

// Environment is a named collection of records inside a project
// (e.g. "Production").
type Environment struct {
	ID        string          `json:"id"`
	ProjectID string          `json:"project_id"`
	Name      string          `json:"name"`
	Type      EnvironmentType `json:"env_type"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
