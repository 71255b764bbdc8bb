package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"feedback-coach/internal/domain"
	"go.uber.org/zap"
)

type recordingCompleter struct {
	calls   int
	chatID  string
	prompt  string
	text    string
	failure error
}

func (c *recordingCompleter) Complete(_ context.Context, chatID, prompt string) (string, error) {
	c.calls++
	c.chatID = chatID
	c.prompt = prompt
	return c.text, c.failure
}

func sampleGap() domain.GapInput {
	return domain.GapInput{
		Subject:      "Иван",
		Task:         "Еженедельный отчет",
		Standard:     "Сдача до 18:00 пятницы",
		Behavior:     "Отчет пришел в 20:30",
		Consequences: "Задержка сводки для клиента",
	}
}

func TestGatewayInterpolatesPrompts(t *testing.T) {
	rec := &recordingCompleter{text: "ok"}
	gw := NewGateway(rec, zap.NewNop())
	ctx := context.Background()

	if _, err := gw.RefineFeedback(ctx, "user_1", "Ты ленивый"); err != nil {
		t.Fatalf("refine: %v", err)
	}
	if rec.chatID != "user_1" || !strings.Contains(rec.prompt, `Черновик пользователя: "Ты ленивый"`) {
		t.Fatalf("unexpected refine prompt %q", rec.prompt)
	}

	if _, err := gw.SuggestQuestions(ctx, "user_1", "Reality (Реальность)", "опаздывает"); err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if !strings.Contains(rec.prompt, `этапе "Reality (Реальность)"`) || !strings.Contains(rec.prompt, `Контекст проблемы: "опаздывает"`) {
		t.Fatalf("unexpected suggest prompt %q", rec.prompt)
	}

	if _, err := gw.AnalyzeGap(ctx, "user_1", sampleGap()); err != nil {
		t.Fatalf("analyze: %v", err)
	}
	for _, want := range []string{
		"1. Сотрудник: Иван",
		"2. Задача: Еженедельный отчет",
		"3. Стандарт (как должно быть): Сдача до 18:00 пятницы",
		"4. Реальное поведение (факты): Отчет пришел в 20:30",
		"5. Последствия: Задержка сводки для клиента",
	} {
		if !strings.Contains(rec.prompt, want) {
			t.Fatalf("analyze prompt missing %q", want)
		}
	}
	if rec.calls != 3 {
		t.Fatalf("expected exactly one request per call, got %d", rec.calls)
	}
}

func TestGatewayPassesFailureThrough(t *testing.T) {
	rec := &recordingCompleter{text: "ignored", failure: ErrUnauthorized}
	gw := NewGateway(rec, zap.NewNop())

	text, err := gw.RefineFeedback(context.Background(), "user_1", "draft")
	if !errors.Is(err, ErrUnauthorized) || text != "" {
		t.Fatalf("expected unauthorized without text, got %q %v", text, err)
	}
	if rec.calls != 1 {
		t.Fatalf("expected no retry, got %d calls", rec.calls)
	}
}

func TestDiagnosticMessages(t *testing.T) {
	cases := []struct {
		err  error
		kind string
		want string
	}{
		{ErrNotConfigured, KindNotConfigured, "Ошибка конфигурации: Не задан токен или ID бота."},
		{ErrUnauthorized, KindUnauthorized, "Ошибка авторизации: Неверный токен бота."},
		{ErrEmptyResponse, KindEmpty, "Бот вернул пустой ответ."},
		{&TransportError{Err: errors.New("connection refused")}, KindTransport, "Ошибка соединения с AI: connection refused"},
		{&TransportError{StatusCode: 500}, KindTransport, "Ошибка соединения с AI: HTTP error! status: 500"},
	}
	for _, tc := range cases {
		if got := Kind(tc.err); got != tc.kind {
			t.Fatalf("Kind(%v) = %q, want %q", tc.err, got, tc.kind)
		}
		if got := Diagnostic(tc.err); got != tc.want {
			t.Fatalf("Diagnostic(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

func TestNewReplySuccess(t *testing.T) {
	reply := NewReply("**text**", nil)
	if !reply.OK() || reply.Text != "**text**" {
		t.Fatalf("unexpected reply %+v", reply)
	}
}

func TestGeminiWithoutKeyIsNotConfigured(t *testing.T) {
	client, err := NewGeminiClient(context.Background(), "", "", zap.NewNop())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if client.Model() != DefaultGeminiModel {
		t.Fatalf("expected default model, got %q", client.Model())
	}

	gw := NewGateway(client, zap.NewNop())
	if _, err := gw.AnalyzeGap(context.Background(), "user_1", sampleGap()); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
