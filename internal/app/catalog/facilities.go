package catalog

import "github.com/ikkim/bohoja-backend/internal/app/model"

// FacilityTypes 기관 유형 안내
var FacilityTypes = []model.FacilityType{
	{Title: "병원", Description: "주변 병원을 찾아보세요."},
	{Title: "요양원", Description: "주변 요양시설을 찾아보세요."},
	{Title: "주간보호센터", Description: "주변 주간보호센터를 찾아보세요."},
	{Title: "행정복지센터", Description: "주변 행정복지센터를 찾아보세요."},
}

var facilities = []model.Facility{
	// 병원
	{ID: "1", Category: "병원", Name: "마산 종합병원", Address: "경상남도 창원시 마산합포구 3·15대로 240", Phone: "055-249-1000"},
	{ID: "2", Category: "병원", Name: "창원 삼성병원", Address: "경상남도 창원시 마산회원구 팔용로 158", Phone: "055-290-6000"},
	{ID: "3", Category: "병원", Name: "경상대학교병원", Address: "경상남도 진주시 강남로 79", Phone: "055-750-8000"},
	{ID: "4", Category: "병원", Name: "부산대학교병원", Address: "부산광역시 서구 구덕로 179", Phone: "051-240-7000"},
	// 요양원
	{ID: "5", Category: "요양원", Name: "마산 실버타운", Address: "경상남도 창원시 마산합포구 월영로 126", Phone: "055-246-7777"},
	{ID: "6", Category: "요양원", Name: "창원 효도마을", Address: "경상남도 창원시 의창구 원이대로 750", Phone: "055-266-8888"},
	{ID: "7", Category: "요양원", Name: "진주 사랑의집", Address: "경상남도 진주시 진주대로 500", Phone: "055-761-9999"},
	// 주간보호센터
	{ID: "8", Category: "주간보호센터", Name: "마산 주간보호센터", Address: "경상남도 창원시 마산합포구 오동동로 45", Phone: "055-241-5555"},
	{ID: "9", Category: "주간보호센터", Name: "창원 데이케어센터", Address: "경상남도 창원시 성산구 원이대로 400", Phone: "055-285-6666"},
	// 행정복지센터
	{ID: "10", Category: "행정복지센터", Name: "마산합포구 행정복지센터", Address: "경상남도 창원시 마산합포구 3·15대로 213", Phone: "055-225-2000"},
	{ID: "11", Category: "행정복지센터", Name: "창원시청 복지정책과", Address: "경상남도 창원시 의창구 중앙대로 151", Phone: "055-225-3000"},
}

// Facilities returns a copy of the facility directory
func Facilities() []model.Facility {
	out := make([]model.Facility, len(facilities))
	copy(out, facilities)
	return out
}

// FindFacility looks up a facility by id
func FindFacility(id string) (model.Facility, bool) {
	for _, f := range facilities {
		if f.ID == id {
			return f, true
		}
	}
	return model.Facility{}, false
}
