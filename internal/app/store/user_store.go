package store

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/ikkim/bohoja-backend/internal/app/model"
	"github.com/ikkim/bohoja-backend/pkg/logger"
	"github.com/ikkim/bohoja-backend/pkg/util"
)

// ErrBenefitAlreadyApplied is returned when the benefit id is already in the history
var ErrBenefitAlreadyApplied = errors.New("benefit already applied")

// ErrAlreadyRegistered is returned when a guardian is already stored for this process
var ErrAlreadyRegistered = errors.New("guardian already registered")

// Option configures a UserStore
type Option func(*UserStore)

// WithClock replaces time.Now, mainly for tests
func WithClock(now func() time.Time) Option {
	return func(s *UserStore) {
		s.now = now
	}
}

// Registration is everything the signup wizard commits in one step
type Registration struct {
	Guardian             model.GuardianInfo
	Patient              model.PatientInfo
	Documents            []model.Document
	NotificationSettings model.NotificationSettings
	Prescription         *model.NewPrescription
}

// UserStore 현재 보호자 세션의 단일 저장소.
// It is created once at startup and shared by every service; all state lives in
// memory and is lost on restart.
type UserStore struct {
	mu               sync.RWMutex
	data             model.UserData
	now              func() time.Time
	lastPrescription int64
}

// NewUserStore 저장소 생성자
func NewUserStore(opts ...Option) *UserStore {
	s := &UserStore{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetGuardianInfo replaces the guardian wholesale. The password is stored as a bcrypt hash.
func (s *UserStore) SetGuardianInfo(info model.GuardianInfo) error {
	hashed, err := util.HashPassword(info.Password)
	if err != nil {
		logger.Error("Failed to hash guardian password", err)
		return err
	}
	info.Password = hashed

	s.mu.Lock()
	s.data.Guardian = &info
	s.mu.Unlock()

	logger.Debug("Guardian info stored", map[string]interface{}{
		"guardian_name": info.GuardianName,
		"region":        info.Region,
	})
	return nil
}

// SetPatientInfo stores the patient with the age derived from BirthDate.
// A birth date that does not parse is stored with age 0.
func (s *UserStore) SetPatientInfo(info model.PatientInfo) {
	info.Age = s.ageOf(info.BirthDate)

	s.mu.Lock()
	s.data.Patient = &info
	s.mu.Unlock()

	logger.Debug("Patient info stored", map[string]interface{}{
		"patient_name": info.PatientName,
		"age":          info.Age,
	})
}

func (s *UserStore) ageOf(birthDate string) int {
	age, err := util.CalculateAge(birthDate, s.now())
	if err != nil {
		logger.Warn("Invalid patient birth date, using age 0", map[string]interface{}{
			"birth_date": birthDate,
			"error":      err.Error(),
		})
		return 0
	}
	return age
}

// Register commits a completed signup: guardian, patient, documents, notification
// settings and the optional seed prescription are written together or not at all.
// A second signup never replaces the stored guardian.
func (s *UserStore) Register(reg Registration) error {
	if s.Guardian() != nil {
		return ErrAlreadyRegistered
	}

	hashed, err := util.HashPassword(reg.Guardian.Password)
	if err != nil {
		logger.Error("Failed to hash guardian password", err)
		return err
	}
	guardian := reg.Guardian
	guardian.Password = hashed

	patient := reg.Patient
	patient.Age = s.ageOf(patient.BirthDate)

	s.mu.Lock()
	defer s.mu.Unlock()

	// another signup committed while the password was being hashed
	if s.data.Guardian != nil {
		return ErrAlreadyRegistered
	}

	s.data.Guardian = &guardian
	s.data.Patient = &patient
	s.data.Documents = append([]model.Document(nil), reg.Documents...)
	s.data.NotificationSettings = reg.NotificationSettings
	if reg.Prescription != nil {
		s.appendPrescriptionLocked(*reg.Prescription)
	}

	logger.Info("Signup committed", map[string]interface{}{
		"guardian_name": guardian.GuardianName,
		"patient_name":  patient.PatientName,
		"documents":     len(reg.Documents),
	})
	return nil
}

// Login sets the session flag when phone (compared digits only) and password match
// the stored guardian. It returns false when no guardian is set.
func (s *UserStore) Login(phoneNumber, password string) bool {
	s.mu.RLock()
	guardian := s.data.Guardian
	s.mu.RUnlock()

	if guardian == nil {
		return false
	}
	if util.NormalizePhone(guardian.PhoneNumber) != util.NormalizePhone(phoneNumber) {
		return false
	}
	if !util.VerifyPassword(guardian.Password, password) {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// guardian replaced while the hash was being compared
	if s.data.Guardian != guardian {
		return false
	}
	s.data.IsLoggedIn = true
	return true
}

// Logout clears only the session flag
func (s *UserStore) Logout() {
	s.mu.Lock()
	s.data.IsLoggedIn = false
	s.mu.Unlock()
}

func (s *UserStore) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.IsLoggedIn
}

// ApplyBenefit appends an applied entry with status applied. An id that is already
// in the history is rejected with ErrBenefitAlreadyApplied.
func (s *UserStore) ApplyBenefit(app model.BenefitApplication) (model.AppliedBenefit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, applied := range s.data.AppliedBenefits {
		if applied.ID == app.ID {
			return model.AppliedBenefit{}, ErrBenefitAlreadyApplied
		}
	}

	entry := model.AppliedBenefit{
		ID:          app.ID,
		Name:        app.Name,
		Category:    app.Category,
		Savings:     app.Savings,
		AppliedDate: s.now(),
		Status:      model.BenefitStatusApplied,
	}
	s.data.AppliedBenefits = append(s.data.AppliedBenefits, entry)
	return entry, nil
}

// AddPrescription appends a record with a generated id and the current time
func (s *UserStore) AddPrescription(p model.NewPrescription) model.PrescriptionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendPrescriptionLocked(p)
}

// appendPrescriptionLocked ids are creation milliseconds, bumped so they stay strictly increasing
func (s *UserStore) appendPrescriptionLocked(p model.NewPrescription) model.PrescriptionRecord {
	now := s.now()
	id := now.UnixMilli()
	if id <= s.lastPrescription {
		id = s.lastPrescription + 1
	}
	s.lastPrescription = id

	record := model.PrescriptionRecord{
		ID:           strconv.FormatInt(id, 10),
		HospitalName: p.HospitalName,
		Date:         p.Date,
		ImageURI:     p.ImageURI,
		AddedDate:    now,
	}
	s.data.Prescriptions = append(s.data.Prescriptions, record)
	return record
}

// Guardian returns a copy of the guardian, or nil
func (s *UserStore) Guardian() *model.GuardianInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data.Guardian == nil {
		return nil
	}
	g := *s.data.Guardian
	return &g
}

// Patient returns a copy of the patient, or nil
func (s *UserStore) Patient() *model.PatientInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data.Patient == nil {
		return nil
	}
	p := *s.data.Patient
	return &p
}

func (s *UserStore) AppliedBenefits() []model.AppliedBenefit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.AppliedBenefit(nil), s.data.AppliedBenefits...)
}

func (s *UserStore) Prescriptions() []model.PrescriptionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.PrescriptionRecord(nil), s.data.Prescriptions...)
}

func (s *UserStore) NotificationSettings() model.NotificationSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.NotificationSettings
}

// Snapshot returns a deep copy of the whole session
func (s *UserStore) Snapshot() model.UserData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := model.UserData{
		IsLoggedIn:           s.data.IsLoggedIn,
		AppliedBenefits:      append([]model.AppliedBenefit(nil), s.data.AppliedBenefits...),
		Prescriptions:        append([]model.PrescriptionRecord(nil), s.data.Prescriptions...),
		Documents:            append([]model.Document(nil), s.data.Documents...),
		NotificationSettings: s.data.NotificationSettings,
	}
	if s.data.Guardian != nil {
		g := *s.data.Guardian
		out.Guardian = &g
	}
	if s.data.Patient != nil {
		p := *s.data.Patient
		out.Patient = &p
	}
	return out
}

// Now exposes the store clock so services agree on "today"
func (s *UserStore) Now() time.Time {
	return s.now()
}
