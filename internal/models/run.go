/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package models

import (
	"time"
)

// BuildRun records the provenance of one dataset build: everything needed
// to reproduce the artifacts byte for byte.
type BuildRun struct {
	ID                   string    `gorm:"type:uuid;primaryKey" json:"id"`
	Strategy             string    `gorm:"not null" json:"strategy"`
	Seed                 int64     `gorm:"not null" json:"seed"`
	ReferenceDate        time.Time `gorm:"not null" json:"reference_date"`
	TotalObjects         int       `gorm:"not null" json:"total_objects"`
	TestPercentage       float64   `json:"test_percentage"`
	ValidationPercentage float64   `json:"validation_percentage"`
	OutFolder            string    `json:"out_folder"`
	DurationMS           int64     `json:"duration_ms"`

	// Relationships
	Artifacts []SplitArtifact `gorm:"foreignKey:RunID" json:"artifacts,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table name for GORM.
func (BuildRun) TableName() string {
	return "build_runs"
}

// SplitArtifact records one written split table and its content checksum.
type SplitArtifact struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	RunID  string `gorm:"type:uuid;index;not null" json:"run_id"`
	Split  string `gorm:"not null" json:"split"`
	Rows   int    `gorm:"not null" json:"rows"`
	Path   string `json:"path"`
	SHA256 string `json:"sha256"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table name for GORM.
func (SplitArtifact) TableName() string {
	return "split_artifacts"
}
