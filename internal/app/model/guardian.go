package model

// GuardianInfo 보호자(앱 사용자) 정보
// Password holds the bcrypt hash once the guardian is stored; it is never serialised.
type GuardianInfo struct {
	PhoneNumber   string `json:"phone_number"`
	Password      string `json:"-"`
	GuardianName  string `json:"guardian_name"`
	GuardianPhone string `json:"guardian_phone"`
	Relationship  string `json:"relationship"`
	Region        string `json:"region"`
}

// Relationships 환자와의 관계 선택지
var Relationships = []string{"부모", "자녀", "배우자", "형제/자매", "기타"}

// Regions 광역자치단체 17개
var Regions = []string{
	"서울특별시",
	"부산광역시",
	"대구광역시",
	"인천광역시",
	"광주광역시",
	"대전광역시",
	"울산광역시",
	"세종특별자치시",
	"경기도",
	"강원도",
	"충청북도",
	"충청남도",
	"전라북도",
	"전라남도",
	"경상북도",
	"경상남도",
	"제주특별자치도",
}

func IsRelationship(v string) bool {
	return contains(Relationships, v)
}

func IsRegion(v string) bool {
	return contains(Regions, v)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
