package model

// Document is an uploaded file reference returned by the picker/upload flow
type Document struct {
	Name     string `json:"name"`
	URI      string `json:"uri"`
	MimeType string `json:"mime_type"`
}

// NotificationSettings 알림 수단 (가입 4단계에서 선택)
type NotificationSettings struct {
	Kakao bool `json:"kakao"`
	SMS   bool `json:"sms"`
	App   bool `json:"app"`
}

// UserData is the aggregate root held by the process-wide store
type UserData struct {
	Guardian             *GuardianInfo        `json:"guardian"`
	Patient              *PatientInfo         `json:"patient"`
	IsLoggedIn           bool                 `json:"is_logged_in"`
	AppliedBenefits      []AppliedBenefit     `json:"applied_benefits"`
	Prescriptions        []PrescriptionRecord `json:"prescriptions"`
	Documents            []Document           `json:"documents"`
	NotificationSettings NotificationSettings `json:"notification_settings"`
}
