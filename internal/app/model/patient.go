package model

// PatientInfo 환자 정보. Age is derived from BirthDate when the patient is stored.
type PatientInfo struct {
	PatientName         string `json:"patient_name"`
	BirthDate           string `json:"birth_date"` // YYYY-MM-DD
	PatientRelationship string `json:"patient_relationship"`
	PatientRegion       string `json:"patient_region"`
	Diseases            string `json:"diseases"`
	Age                 int    `json:"age"`
}

// PatientSummary is the card shown on the home screen and fed to the AI chat
type PatientSummary struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Age          int    `json:"age"`
	Diagnosis    string `json:"diagnosis"`
	Address      string `json:"address"`
}

// DefaultPatientSummary is shown before any patient has been registered
var DefaultPatientSummary = PatientSummary{
	Name:         "환자명",
	Relationship: "관계",
	Age:          0,
	Diagnosis:    "진단명 없음",
	Address:      "주소 없음",
}

// Summary returns the home-card view of the patient, or the defaults for nil
func (p *PatientInfo) Summary() PatientSummary {
	if p == nil {
		return DefaultPatientSummary
	}
	return PatientSummary{
		Name:         p.PatientName,
		Relationship: p.PatientRelationship,
		Age:          p.Age,
		Diagnosis:    p.Diseases,
		Address:      p.PatientRegion,
	}
}
