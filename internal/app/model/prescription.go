package model

import "time"

// PlaceholderImageURI marks a prescription without an uploaded image
const PlaceholderImageURI = "placeholder"

// PrescriptionRecord 병원 방문 기록 (처방전 이미지)
type PrescriptionRecord struct {
	ID           string    `json:"id"`
	HospitalName string    `json:"hospital_name"`
	Date         string    `json:"date"`
	ImageURI     string    `json:"image_uri"`
	AddedDate    time.Time `json:"added_date"`
}

// NewPrescription is the caller-supplied part of a prescription record
type NewPrescription struct {
	HospitalName string `json:"hospital_name" validate:"required"`
	Date         string `json:"date" validate:"required"`
	ImageURI     string `json:"image_uri" validate:"required"`
}

// HasImage reports whether an actual image was uploaded
func (p PrescriptionRecord) HasImage() bool {
	return p.ImageURI != "" && p.ImageURI != PlaceholderImageURI
}
