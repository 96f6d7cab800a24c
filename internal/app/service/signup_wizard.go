package service

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ikkim/bohoja-backend/internal/app/model"
	"github.com/ikkim/bohoja-backend/internal/app/store"
	apperrors "github.com/ikkim/bohoja-backend/internal/errors"
	"github.com/ikkim/bohoja-backend/pkg/util"
)

// SignupStage 회원가입 단계
type SignupStage int

const (
	StageCredentials SignupStage = iota + 1
	StageGuardian
	StagePatient
	StageDocuments
	StageComplete
)

func (s SignupStage) String() string {
	switch s {
	case StageCredentials:
		return "credentials"
	case StageGuardian:
		return "guardian"
	case StagePatient:
		return "patient"
	case StageDocuments:
		return "documents"
	case StageComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// 회원가입 안내 메시지
const (
	msgRequiredFields   = "모든 필드를 입력해주세요."
	msgPasswordMismatch = "비밀번호가 일치하지 않습니다."
	msgPasswordTooShort = "비밀번호는 6자 이상이어야 합니다."
	msgPasswordTooLong  = "비밀번호는 72자 이하여야 합니다."
	msgInvalidPhone     = "올바른 전화번호 형식을 입력해주세요."
	msgInvalidRelation  = "목록에서 관계를 선택해주세요."
	msgInvalidRegion    = "목록에서 지역을 선택해주세요."
	msgInvalidBirthDate = "생년월일을 YYYY-MM-DD 형식으로 입력해주세요."
	msgPrivacyConsent   = "개인정보 수집 및 이용에 동의해주세요."
)

const minPasswordLength = 6

// 가입 완료 시 기본으로 등록되는 병원 방문 기록
var defaultPrescription = model.NewPrescription{
	HospitalName: "마산병원",
	Date:         "2025-12-10",
	ImageURI:     model.PlaceholderImageURI,
}

// CredentialsForm 1단계: 로그인 정보
type CredentialsForm struct {
	PhoneNumber     string `json:"phone_number" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// GuardianForm 2단계: 보호자 정보
type GuardianForm struct {
	GuardianName  string `json:"guardian_name" validate:"required"`
	GuardianPhone string `json:"guardian_phone" validate:"required"`
	Relationship  string `json:"relationship" validate:"required,relationship"`
	Region        string `json:"region" validate:"required,region"`
}

// PatientForm 3단계: 환자 정보
type PatientForm struct {
	PatientName         string `json:"patient_name" validate:"required"`
	BirthDate           string `json:"birth_date" validate:"required,birthdate"`
	PatientRelationship string `json:"patient_relationship" validate:"required,relationship"`
	PatientRegion       string `json:"patient_region" validate:"required,region"`
	Diseases            string `json:"diseases" validate:"required"`
}

// CompletionForm 4단계: 서류, 알림 수단, 개인정보 동의
type CompletionForm struct {
	Documents            []model.Document           `json:"documents"`
	NotificationSettings model.NotificationSettings `json:"notification_settings"`
	AgreePrivacy         bool                       `json:"agree_privacy"`
}

// birthDateShape checks the shape only; "2024-13-99" passes
var birthDateShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var formValidator = newFormValidator()

func newFormValidator() *validator.Validate {
	v := validator.New()
	// report json field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("relationship", func(fl validator.FieldLevel) bool {
		return model.IsRelationship(fl.Field().String())
	})
	_ = v.RegisterValidation("region", func(fl validator.FieldLevel) bool {
		return model.IsRegion(fl.Field().String())
	})
	_ = v.RegisterValidation("birthdate", func(fl validator.FieldLevel) bool {
		return birthDateShape.MatchString(fl.Field().String())
	})
	return v
}

// SignupWizard accumulates the four signup stages and commits them in one store call.
// Nothing reaches the store before Complete succeeds.
type SignupWizard struct {
	stage       SignupStage
	credentials CredentialsForm
	guardian    GuardianForm
	patient     PatientForm
	updatedAt   time.Time
}

// NewSignupWizard 1단계에서 시작하는 가입 진행 상태
func NewSignupWizard(now time.Time) *SignupWizard {
	return &SignupWizard{stage: StageCredentials, updatedAt: now}
}

func (w *SignupWizard) Stage() SignupStage {
	return w.stage
}

// SubmitCredentials validates stage 1 and advances to the guardian stage
func (w *SignupWizard) SubmitCredentials(form CredentialsForm, now time.Time) error {
	if w.stage != StageCredentials {
		return ErrStageOutOfOrder
	}
	if err := validateCredentials(form); err != nil {
		return err
	}

	w.credentials = form
	// 보호자 연락처는 가입 전화번호로 미리 채움
	if w.guardian.GuardianPhone == "" {
		w.guardian.GuardianPhone = form.PhoneNumber
	}
	w.advance(now)
	return nil
}

// SubmitGuardian validates stage 2. An empty guardian phone falls back to the login phone.
func (w *SignupWizard) SubmitGuardian(form GuardianForm, now time.Time) error {
	if w.stage != StageGuardian {
		return ErrStageOutOfOrder
	}
	if form.GuardianPhone == "" {
		form.GuardianPhone = w.credentials.PhoneNumber
	}
	if err := validateForm(form); err != nil {
		return err
	}

	w.guardian = form
	w.advance(now)
	return nil
}

// SubmitPatient validates stage 3
func (w *SignupWizard) SubmitPatient(form PatientForm, now time.Time) error {
	if w.stage != StagePatient {
		return ErrStageOutOfOrder
	}
	if err := validateForm(form); err != nil {
		return err
	}

	w.patient = form
	w.advance(now)
	return nil
}

// Complete checks consent and commits everything entered so far to the store
func (w *SignupWizard) Complete(form CompletionForm, userStore *store.UserStore, now time.Time) error {
	if w.stage != StageDocuments {
		return ErrStageOutOfOrder
	}
	if !form.AgreePrivacy {
		return newValidationError(apperrors.ValidationConsent, "agree_privacy", msgPrivacyConsent)
	}

	seed := defaultPrescription
	err := userStore.Register(store.Registration{
		Guardian: model.GuardianInfo{
			PhoneNumber:   w.credentials.PhoneNumber,
			Password:      w.credentials.Password,
			GuardianName:  w.guardian.GuardianName,
			GuardianPhone: w.guardian.GuardianPhone,
			Relationship:  w.guardian.Relationship,
			Region:        w.guardian.Region,
		},
		Patient: model.PatientInfo{
			PatientName:         w.patient.PatientName,
			BirthDate:           w.patient.BirthDate,
			PatientRelationship: w.patient.PatientRelationship,
			PatientRegion:       w.patient.PatientRegion,
			Diseases:            w.patient.Diseases,
		},
		Documents:            form.Documents,
		NotificationSettings: form.NotificationSettings,
		Prescription:         &seed,
	})
	if err != nil {
		return err
	}

	w.stage = StageComplete
	w.updatedAt = now
	return nil
}

// Back returns to the previous stage keeping every value entered
func (w *SignupWizard) Back(now time.Time) error {
	if w.stage <= StageCredentials || w.stage >= StageComplete {
		return ErrStageOutOfOrder
	}
	w.stage--
	w.updatedAt = now
	return nil
}

func (w *SignupWizard) advance(now time.Time) {
	w.stage++
	w.updatedAt = now
}

// SignupDraftView 가입 진행 상태 (비밀번호 제외)
type SignupDraftView struct {
	ID          string       `json:"id"`
	Stage       SignupStage  `json:"stage"`
	StageName   string       `json:"stage_name"`
	PhoneNumber string       `json:"phone_number,omitempty"`
	Guardian    GuardianForm `json:"guardian"`
	Patient     PatientForm  `json:"patient"`
}

func (w *SignupWizard) view(id string) SignupDraftView {
	return SignupDraftView{
		ID:          id,
		Stage:       w.stage,
		StageName:   w.stage.String(),
		PhoneNumber: w.credentials.PhoneNumber,
		Guardian:    w.guardian,
		Patient:     w.patient,
	}
}

// validateCredentials applies the stage 1 checks in the order the app shows them
func validateCredentials(form CredentialsForm) error {
	if err := validateForm(form); err != nil {
		return err
	}
	if form.Password != form.ConfirmPassword {
		return newValidationError(apperrors.ValidationMismatch, "confirm_password", msgPasswordMismatch)
	}
	if len([]rune(form.Password)) < minPasswordLength {
		return newValidationError(apperrors.ValidationTooShort, "password", msgPasswordTooShort)
	}
	if len(form.Password) > util.MaxPasswordBytes {
		return newValidationError(apperrors.ValidationTooLong, "password", msgPasswordTooLong)
	}
	if !util.IsMobileNumber(form.PhoneNumber) {
		return newValidationError(apperrors.ValidationInvalidFormat, "phone_number", msgInvalidPhone)
	}
	return nil
}

// fieldMessages overrides the default message for a "field.tag" pair
type fieldMessages map[string]string

func (m fieldMessages) message(fe validator.FieldError, fallback string) string {
	if msg, ok := m[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	return fallback
}

// validateForm runs the struct tags. A missing field wins over any format problem.
func validateForm(form interface{}) error {
	return validateFormWith(form, nil)
}

// validateFormWith is validateForm with per-field messages
func validateFormWith(form interface{}, messages fieldMessages) error {
	err := formValidator.Struct(form)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return newValidationError(apperrors.ValidationRequired, fe.Field(), messages.message(fe, msgRequiredFields))
		}
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "birthdate":
		return newValidationError(apperrors.ValidationInvalidFormat, fe.Field(), messages.message(fe, msgInvalidBirthDate))
	case "relationship":
		return newValidationError(apperrors.ValidationInvalidChoice, fe.Field(), messages.message(fe, msgInvalidRelation))
	case "region":
		return newValidationError(apperrors.ValidationInvalidChoice, fe.Field(), messages.message(fe, msgInvalidRegion))
	case "max":
		return newValidationError(apperrors.ValidationTooLong, fe.Field(), messages.message(fe, msgRequiredFields))
	default:
		return newValidationError(apperrors.ValidationInvalidInput, fe.Field(), messages.message(fe, msgRequiredFields))
	}
}
