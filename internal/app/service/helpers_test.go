package service

import (
	"testing"
	"time"

	"github.com/ikkim/bohoja-backend/internal/app/model"
	"github.com/ikkim/bohoja-backend/internal/app/store"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestStore(now time.Time) *store.UserStore {
	return store.NewUserStore(store.WithClock(func() time.Time { return now }))
}

// registeredStore has a guardian 010-1234-5678 / secret1 and a patient born 1950-03-01
func registeredStore(t *testing.T, now time.Time, settings model.NotificationSettings) *store.UserStore {
	t.Helper()
	s := newTestStore(now)
	registerGuardian(t, s, settings)
	return s
}

func registerGuardian(t *testing.T, s *store.UserStore, settings model.NotificationSettings) {
	t.Helper()
	require.NoError(t, s.Register(store.Registration{
		Guardian: model.GuardianInfo{
			PhoneNumber:   "010-1234-5678",
			Password:      "secret1",
			GuardianName:  "김보호",
			GuardianPhone: "010-1234-5678",
			Relationship:  "자녀",
			Region:        "경상남도",
		},
		Patient: model.PatientInfo{
			PatientName:         "김환자",
			BirthDate:           "1950-03-01",
			PatientRelationship: "부모",
			PatientRegion:       "경상남도",
			Diseases:            "뇌졸중",
		},
		NotificationSettings: settings,
	}))
}
