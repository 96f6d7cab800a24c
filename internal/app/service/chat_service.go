package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/ikkim/bohoja-backend/internal/app/model"
	"github.com/ikkim/bohoja-backend/internal/app/store"
	"github.com/ikkim/bohoja-backend/internal/metrics"
	"github.com/ikkim/bohoja-backend/pkg/logger"
)

const (
	msgChatEmptyQuestion = "질문을 입력해주세요."
	msgChatTooLong       = "질문은 200자 이내로 입력해주세요."
	msgChatUnavailable   = "죄송합니다. AI 상담 서비스에 문제가 있습니다. 네트워크 연결과 API 키를 확인하고 다시 시도해주세요."
	msgChatNoAnswer      = "응답을 받을 수 없습니다."

	maxTranscript = 200
)

// questionForm max counts runes
type questionForm struct {
	Question string `json:"question" validate:"required,max=200"`
}

var questionMessages = fieldMessages{
	"question.required": msgChatEmptyQuestion,
	"question.max":      msgChatTooLong,
}

// ContentGenerator is the text completion backend (Gemini in production)
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// ChatService AI 상담 서비스 인터페이스
type ChatService interface {
	AskAboutPatient(ctx context.Context, patient model.PatientSummary, question string) string
	SendQuestion(ctx context.Context, question string) ([]model.ChatMessage, error)
	GetMessages() []model.ChatMessage
}

type chatService struct {
	store     *store.UserStore
	generator ContentGenerator
	metrics   *metrics.Metrics

	mu         sync.Mutex
	transcript []model.ChatMessage
}

// NewChatService AI 상담 서비스 생성자
func NewChatService(userStore *store.UserStore, generator ContentGenerator, m *metrics.Metrics) ChatService {
	return &chatService{
		store:     userStore,
		generator: generator,
		metrics:   m,
	}
}

// AskAboutPatient never fails: errors become the fixed apology text
func (s *chatService) AskAboutPatient(ctx context.Context, patient model.PatientSummary, question string) string {
	answer, err := s.generator.GenerateContent(ctx, buildPatientPrompt(patient, question))
	if err != nil {
		s.metrics.ChatRequests.WithLabelValues("failed").Inc()
		logger.Error("AI consultation failed", err)
		return msgChatUnavailable
	}
	if strings.TrimSpace(answer) == "" {
		s.metrics.ChatRequests.WithLabelValues("empty").Inc()
		return msgChatNoAnswer
	}
	s.metrics.ChatRequests.WithLabelValues("success").Inc()
	return answer
}

// SendQuestion appends the question and the answer to the transcript and returns both
func (s *chatService) SendQuestion(ctx context.Context, question string) ([]model.ChatMessage, error) {
	question = strings.TrimSpace(question)
	if err := validateFormWith(questionForm{Question: question}, questionMessages); err != nil {
		return nil, err
	}

	asked := model.ChatMessage{
		Role:      model.ChatRoleUser,
		Content:   question,
		Timestamp: s.store.Now(),
	}
	s.append(asked)

	answer := s.AskAboutPatient(ctx, s.store.Patient().Summary(), question)
	replied := model.ChatMessage{
		Role:      model.ChatRoleAssistant,
		Content:   answer,
		Timestamp: s.store.Now(),
	}
	s.append(replied)

	return []model.ChatMessage{asked, replied}, nil
}

func (s *chatService) GetMessages() []model.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.ChatMessage(nil), s.transcript...)
}

func (s *chatService) append(msg model.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transcript = append(s.transcript, msg)
	if len(s.transcript) > maxTranscript {
		s.transcript = s.transcript[len(s.transcript)-maxTranscript:]
	}
}

func buildPatientPrompt(patient model.PatientSummary, question string) string {
	var prompt strings.Builder

	prompt.WriteString("당신은 의료 AI 어시스턴트입니다.\n\n")
	prompt.WriteString("환자 정보:\n")
	fmt.Fprintf(&prompt, "- 이름: %s\n", patient.Name)
	fmt.Fprintf(&prompt, "- 나이: %d세\n", patient.Age)
	fmt.Fprintf(&prompt, "- 진단명: %s\n\n", patient.Diagnosis)
	fmt.Fprintf(&prompt, "사용자 질문: %s\n\n", question)
	prompt.WriteString("위 환자 정보를 바탕으로 친절하고 이해하기 쉽게 의료 상담을 해주세요. 단, 다음 사항을 반드시 포함해주세요:\n")
	prompt.WriteString("1. 정확한 진단과 치료는 반드시 의료진과 상담이 필요함을 안내\n")
	prompt.WriteString("2. 일반적인 정보 제공 차원에서 답변\n")
	prompt.WriteString("3. 응급상황 시 즉시 병원 방문 권유\n\n")
	prompt.WriteString("답변을 자세하게 써주세요.")

	return prompt.String()
}
