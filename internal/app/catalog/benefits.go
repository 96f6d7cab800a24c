package catalog

import "github.com/ikkim/bohoja-backend/internal/app/model"

// Categories 혜택 카테고리 (첫 항목은 전체)
var Categories = []string{
	model.AllCategories,
	"요양급여",
	"의료비지원",
	"돌봄서비스",
	"간병지원",
	"생활지원",
	"주거지원",
}

var benefits = []model.Benefit{
	{
		ID:                  "1",
		Name:                "장기요양보험 재가급여",
		Category:            "요양급여",
		Savings:             "월 80만원",
		Description:         "가정에서 요양 서비스를 받을 수 있는 혜택입니다. 방문요양, 방문목욕, 방문간호, 주·야간보호, 단기보호 서비스 등을 제공하여 환자와 가족의 부담을 크게 덜어드립니다.",
		DetailedDescription: "장기요양보험 재가급여는 거동이 불편한 어르신들이 가정에서 전문적인 요양서비스를 받을 수 있도록 지원하는 제도입니다. 요양보호사가 직접 가정을 방문하여 신체활동 지원, 가사활동 지원, 인지활동형 프로그램 등을 제공합니다.",
		Agency:              "국민건강보험공단",
		Contact:             "1577-1000",
		Requirements: []string{
			"만 65세 이상 또는 65세 미만 노인성 질병을 가진 자",
			"장기요양인정 신청 및 등급 판정 필요",
			"1~5등급 또는 인지지원등급 판정 필요",
		},
	},
	{
		ID:                  "2",
		Name:                "중증환자 의료비 지원",
		Category:            "의료비지원",
		Savings:             "월 120만원",
		Deadline:            "2026-11-30",
		Description:         "뇌혈관질환, 심장질환 등 중증질환자를 위한 의료비 지원 제도입니다. 본인부담금을 크게 줄일 수 있습니다.",
		DetailedDescription: "중증질환 의료비 지원사업은 암, 뇌혈관질환, 심장질환, 희귀질환, 중증화상 등으로 진단받은 환자의 경제적 부담을 덜어주기 위한 제도입니다. 본인부담금 상한제와 함께 적용되어 의료비 부담을 최소화합니다.",
		Agency:              "보건복지부",
		Contact:             "129 (보건복지콜센터)",
		Requirements: []string{
			"중증질환(암, 뇌혈관질환, 심장질환 등) 진단",
			"건강보험 가입자 또는 피부양자",
			"소득수준에 따른 지원 차등 적용",
		},
	},
	{
		ID:                  "3",
		Name:                "장애인활동지원서비스",
		Category:            "돌봄서비스",
		Savings:             "월 60만원",
		Description:         "일상생활 지원이 필요한 분을 위한 활동보조 서비스를 제공합니다.",
		DetailedDescription: "장애인이 지역사회에서 자립생활을 할 수 있도록 신체활동, 가사활동, 사회활동 등을 종합적으로 지원하는 서비스입니다. 개인별 지원계획에 따라 맞춤형 서비스를 제공합니다.",
		Agency:              "보건복지부",
		Contact:             "129 (보건복지콜센터)",
		Requirements: []string{
			"만 6세 이상 ~ 만 65세 미만 등록 장애인",
			"활동지원 인정조사표에 의한 점수 기준 충족",
			"장애인활동지원 수급자격 인정",
		},
	},
	{
		ID:                  "4",
		Name:                "간병비 지원사업",
		Category:            "간병지원",
		Savings:             "월 40만원",
		Deadline:            "2026-10-31",
		Description:         "저소득층 환자의 간병비 부담을 덜어주는 지원사업입니다.",
		DetailedDescription: "의료급여 수급권자 등 저소득층 환자가 입원 시 발생하는 간병비 부담을 줄이기 위해 간병서비스를 지원하는 사업입니다. 전문 간병인이 환자의 일상생활을 도와드립니다.",
		Agency:              "지역 보건소",
		Contact:             "지역 보건소 문의",
		Requirements: []string{
			"의료급여 수급권자",
			"기초생활보장 수급자",
			"입원 치료가 필요한 환자",
		},
	},
	{
		ID:                  "5",
		Name:                "긴급복지 생계지원",
		Category:            "생활지원",
		Savings:             "월 30만원",
		Deadline:            "2026-12-31",
		Description:         "주소득자의 질병·부상 등으로 생계가 곤란한 가구에 생계비를 지원합니다.",
		DetailedDescription: "갑작스러운 위기상황으로 생계유지가 곤란한 저소득 가구에 생계비, 의료비 등을 신속하게 지원하여 위기상황에서 벗어날 수 있도록 돕는 제도입니다.",
		Agency:              "읍·면·동 행정복지센터",
		Contact:             "129 (보건복지콜센터)",
		Requirements: []string{
			"주소득자의 중한 질병 또는 부상",
			"기준 중위소득 75% 이하",
			"재산 및 금융재산 기준 충족",
		},
	},
	{
		ID:                  "6",
		Name:                "주거급여",
		Category:            "주거지원",
		Savings:             "월 35만원",
		Description:         "저소득 가구의 임차료 및 주택 수선 비용을 지원합니다.",
		DetailedDescription: "소득·주거형태·주거비 부담수준 등을 종합적으로 고려하여 저소득 가구에 임차료를 지원하고, 자가 가구에는 주택 개량을 지원하는 제도입니다.",
		Agency:              "국토교통부",
		Contact:             "1600-0777 (주거급여 콜센터)",
		Requirements: []string{
			"기준 중위소득 48% 이하 가구",
			"임차 가구 또는 자가 가구",
		},
	},
	{
		ID:                  "7",
		Name:                "노인맞춤돌봄서비스",
		Category:            "돌봄서비스",
		Savings:             "월 25만원",
		Deadline:            "2027-03-31",
		Description:         "일상생활 영위가 어려운 어르신께 안부확인, 가사지원 등 맞춤형 돌봄을 제공합니다.",
		DetailedDescription: "돌봄이 필요한 어르신에게 안전지원, 사회참여, 생활교육, 일상생활 지원 등 필요한 서비스를 종합적으로 제공하여 안정적인 노후생활을 보장합니다.",
		Agency:              "보건복지부",
		Contact:             "129 (보건복지콜센터)",
		Requirements: []string{
			"만 65세 이상 기초연금 수급자",
			"장기요양등급 미해당자",
		},
	},
}

// Benefits returns a copy of the benefit catalog in display order
func Benefits() []model.Benefit {
	out := make([]model.Benefit, len(benefits))
	copy(out, benefits)
	return out
}

// FindBenefit looks up a catalog entry by id
func FindBenefit(id string) (model.Benefit, bool) {
	for _, b := range benefits {
		if b.ID == id {
			return b, true
		}
	}
	return model.Benefit{}, false
}

// RecommendedBenefitIDs are the benefits offered after a diagnosis has been registered
var RecommendedBenefitIDs = []string{"1", "2", "4"}
