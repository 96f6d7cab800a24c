package model

// Facility 주변 기관 (병원, 요양원, 주간보호센터, 행정복지센터)
type Facility struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
}

// FacilityType describes one facility category tile
type FacilityType struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
