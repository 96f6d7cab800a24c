package errors

// 에러 코드 상수 정의
// 형식: CATEGORY_SPECIFIC_DETAIL
// 앱에서 이 코드를 기반으로 화면 처리를 분기함

const (
	// ==================== 인증 (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"        // 로그인 필요
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS" // 잘못된 전화번호/비밀번호
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"       // 토큰 만료
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"       // 잘못된 토큰
	AuthTokenRevoked       = "AUTH_TOKEN_REVOKED"       // 로그아웃된 토큰

	// ==================== 검증 (VALIDATION_) ====================
	ValidationInvalidInput  = "VALIDATION_INVALID_INPUT"  // 잘못된 입력
	ValidationRequired      = "VALIDATION_REQUIRED"       // 필수 항목
	ValidationInvalidFormat = "VALIDATION_INVALID_FORMAT" // 잘못된 형식
	ValidationTooShort      = "VALIDATION_TOO_SHORT"      // 너무 짧음
	ValidationTooLong       = "VALIDATION_TOO_LONG"       // 너무 김
	ValidationMismatch      = "VALIDATION_MISMATCH"       // 비밀번호 확인 불일치
	ValidationInvalidChoice = "VALIDATION_INVALID_CHOICE" // 선택지에 없는 값
	ValidationConsent       = "VALIDATION_CONSENT"        // 개인정보 동의 필요

	// ==================== 회원가입 (SIGNUP_) ====================
	SignupDraftNotFound     = "SIGNUP_DRAFT_NOT_FOUND"    // 가입 진행 정보 없음
	SignupStageOutOfOrder   = "SIGNUP_STAGE_OUT_OF_ORDER" // 단계 순서 오류
	SignupAlreadyRegistered = "SIGNUP_ALREADY_REGISTERED" // 이미 가입된 보호자 존재

	// ==================== 혜택 (BENEFIT_) ====================
	BenefitNotFound       = "BENEFIT_NOT_FOUND"       // 혜택 없음
	BenefitAlreadyApplied = "BENEFIT_ALREADY_APPLIED" // 이미 신청함

	// ==================== 환자/기관 ====================
	PatientNotRegistered = "PATIENT_NOT_REGISTERED" // 환자 정보 없음
	FacilityNotFound     = "FACILITY_NOT_FOUND"     // 기관 없음

	// ==================== 리소스 (RESOURCE_) ====================
	ResourceNotFound = "RESOURCE_NOT_FOUND" // 리소스 없음

	// ==================== 업로드 (UPLOAD_) ====================
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE" // 잘못된 파일 형식
	UploadInvalidFolder   = "UPLOAD_INVALID_FOLDER"    // 잘못된 업로드 폴더
	UploadFailed          = "UPLOAD_FAILED"            // 업로드 실패

	// ==================== 내부 오류 (INTERNAL_) ====================
	InternalServerError = "INTERNAL_SERVER_ERROR" // 서버 오류
	InternalExternalAPI = "INTERNAL_EXTERNAL_API" // 외부 API 오류
)
