package model

import "time"

// AllCategories is the sentinel category that disables filtering
const AllCategories = "전체"

// Benefit 복지/의료 혜택 (정적 카탈로그 항목)
type Benefit struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	Savings             string   `json:"savings"` // 표시용 문자열, 예: "월 80만원"
	Category            string   `json:"category"`
	Deadline            string   `json:"deadline,omitempty"` // YYYY-MM-DD
	DetailedDescription string   `json:"detailed_description,omitempty"`
	Agency              string   `json:"agency,omitempty"`
	Contact             string   `json:"contact,omitempty"`
	Requirements        []string `json:"requirements,omitempty"`
}

type BenefitStatus string

const (
	BenefitStatusApplied  BenefitStatus = "applied"
	BenefitStatusApproved BenefitStatus = "approved"
	BenefitStatusRejected BenefitStatus = "rejected"
)

// Text returns the label shown in the history screen
func (s BenefitStatus) Text() string {
	switch s {
	case BenefitStatusApplied:
		return "신청완료"
	case BenefitStatusApproved:
		return "승인됨"
	case BenefitStatusRejected:
		return "거절됨"
	default:
		return "처리중"
	}
}

// AppliedBenefit 신청한 혜택 이력
type AppliedBenefit struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Category    string        `json:"category"`
	Savings     string        `json:"savings"`
	AppliedDate time.Time     `json:"applied_date"`
	Status      BenefitStatus `json:"status"`
}

// BenefitApplication is the subset of a benefit recorded when applying
type BenefitApplication struct {
	ID       string
	Name     string
	Category string
	Savings  string
}

// Application returns the fields of b that go into the history
func (b Benefit) Application() BenefitApplication {
	return BenefitApplication{
		ID:       b.ID,
		Name:     b.Name,
		Category: b.Category,
		Savings:  b.Savings,
	}
}
