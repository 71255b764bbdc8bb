package ai

import (
	"fmt"

	"feedback-coach/internal/domain"
)

// RefinePrompt asks for a fact-based rewrite of a feedback draft.
func RefinePrompt(draft string) string {
	return fmt.Sprintf(`
Ты эксперт, специализирующийся на эффективной обратной связи.
Пользователь предоставит черновик отзыва/фидбека.
Твоя задача:
1. Проанализировать, является ли высказывание "Конкретным" (а не расплывчатым) и основанным на фактах, а не на мнениях.
2. Если оно расплывчатое или содержит догадки/домыслы вместо фактов, полученных из наблюдения, перепиши его так, чтобы оно было конкретным и основанным на фактах.
3. Кратко объясни, почему были сделаны изменения.

Черновик пользователя: "%s"

Отвечай на русском языке. Будь краток и полезен.
`, draft)
}

// GrowPrompt asks for coaching questions for one GROW stage.
func GrowPrompt(stage, situation string) string {
	return fmt.Sprintf(`
Ты эксперт-коуч, использующий модель GROW.
Пользователь находится на этапе "%s" обсуждения обратной связи.
Контекст проблемы: "%s".

Сгенерируй 3 кратких конкретных, сильных коучинговых вопроса, которые менеджер может задать сотруднику для проработки этого этапа.
Отвечай на русском языке. Оформи в виде маркированного списка.
`, stage, situation)
}

// GapPrompt asks for a one-sentence gap and a neutral opening statement.
func GapPrompt(in domain.GapInput) string {
	return fmt.Sprintf(`
Ты аналитик эффективности персонала.
У нас есть данные для анализа ситуации сотрудника.

Вводные данные:
1. Сотрудник: %s
2. Задача: %s
3. Стандарт (как должно быть): %s
4. Реальное поведение (факты): %s
5. Последствия: %s

Твоя задача:
1. Сформулируй одним предложением "Разрыв" (Gap) - четкую разницу между ожиданием и реальностью.
2. Напиши пример "Вступительного слова" для менеджера, которое звучит объективно, безоценочно и опирается только на факты из пункта 4. Используй формулу: "Я заметил [факт], а нашим стандартом является [стандарт], это привело к [последствия]".

Отвечай на русском языке. Используй Markdown.
`, in.Subject, in.Task, in.Standard, in.Behavior, in.Consequences)
}
