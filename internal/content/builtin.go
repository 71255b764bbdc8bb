package content

import "feedback-coach/internal/domain"

// DefaultCatalogID names the built-in catalog.
const DefaultCatalogID = "default"

// Builtin returns a fresh copy of the built-in Russian-language catalog.
func Builtin() domain.Catalog {
	return domain.Catalog{
		ID:      DefaultCatalogID,
		Quiz:    quiz(),
		Factors: achieve(),
		Stages:  grow(),
		Cards:   theory(),
	}
}

func quiz() []domain.QuizQuestion {
	return []domain.QuizQuestion{
		{
			ID:          1,
			Statement:   "Он пришел на планерку в 9:15, хотя она начинается в 9:00.",
			Label:       domain.LabelObservation,
			Explanation: "Время прихода можно проверить, это наблюдаемый факт.",
		},
		{
			ID:          2,
			Statement:   "Ей совершенно безразлична судьба проекта.",
			Label:       domain.LabelInference,
			Explanation: "Безразличие нельзя увидеть, это вывод о мотивах человека.",
		},
		{
			ID:          3,
			Statement:   "В отчете за март три таблицы не заполнены.",
			Label:       domain.LabelObservation,
			Explanation: "Пустые таблицы можно показать, это конкретный факт.",
		},
		{
			ID:          4,
			Statement:   "Он специально затягивает сдачу задач, чтобы получить переработки.",
			Label:       domain.LabelInference,
			Explanation: "Приписывание умысла основано на догадке, а не на наблюдении.",
		},
		{
			ID:          5,
			Statement:   "На встрече с клиентом она дважды перебила его, не дав закончить вопрос.",
			Label:       domain.LabelObservation,
			Explanation: "Описано конкретное поведение, которое видели участники встречи.",
		},
		{
			ID:          6,
			Statement:   "Он ленивый и не хочет развиваться.",
			Label:       domain.LabelInference,
			Explanation: "\"Ленивый\" это оценка личности, а не описание действий.",
		},
		{
			ID:          7,
			Statement:   "Коллеги говорят, что с ним невозможно работать.",
			Label:       domain.LabelInference,
			Explanation: "Это пересказ чужих мнений. Слухи не являются вашим наблюдением.",
		},
		{
			ID:          8,
			Statement:   "За последние две недели он закрыл 4 задачи из 10 запланированных.",
			Label:       domain.LabelObservation,
			Explanation: "Количество закрытых задач измеримо и проверяемо.",
		},
	}
}

func achieve() []domain.AchieveFactor {
	return []domain.AchieveFactor{
		{
			Key:      "skills",
			Name:     "Навыки и знания",
			Question: "Есть ли у сотрудника знания и опыт, чтобы выполнить задачу?",
			Solution: "Организуйте обучение, наставничество или разбор задачи на примере.",
		},
		{
			Key:      "clarity",
			Name:     "Понимание задачи",
			Question: "Понимает ли сотрудник, что именно и к какому сроку от него ожидается?",
			Solution: "Проговорите ожидаемый результат, критерии качества и сроки, попросите пересказать своими словами.",
		},
		{
			Key:      "help",
			Name:     "Ресурсы и поддержка",
			Question: "Хватает ли сотруднику времени, инструментов, бюджета и помощи коллег?",
			Solution: "Выясните, каких ресурсов не хватает, и обеспечьте их или пересмотрите объем задачи.",
		},
		{
			Key:      "incentive",
			Name:     "Мотивация",
			Question: "Хочет ли сотрудник выполнять задачу? Видит ли он в ней смысл и выгоду для себя?",
			Solution: "Обсудите, что для сотрудника важно, свяжите задачу с его целями, признавайте успехи.",
		},
		{
			Key:      "evaluation",
			Name:     "Обратная связь",
			Question: "Получает ли сотрудник регулярную обратную связь о своих результатах?",
			Solution: "Договоритесь о регулярных встречах один на один и точках контроля по задаче.",
		},
		{
			Key:      "validity",
			Name:     "Обоснованность требований",
			Question: "Справедливы и законны ли требования, предъявляемые к сотруднику?",
			Solution: "Проверьте, что стандарт согласован, задокументирован и одинаково применяется ко всем.",
		},
		{
			Key:      "environment",
			Name:     "Внешние условия",
			Question: "Нет ли внешних обстоятельств (рынок, смежные отделы, личная ситуация), мешающих работе?",
			Solution: "Обсудите внешние препятствия и помогите сотруднику найти способы их обойти или смягчить.",
		},
	}
}

func grow() []domain.GrowStep {
	return []domain.GrowStep{
		{
			ID:          "goal",
			Title:       "Goal (Цель)",
			Description: "Договоритесь о цели разговора и о том, какой результат нужен.",
			Questions: []string{
				"Чего ты хочешь достичь по этой задаче?",
				"Как поймем, что результат достигнут?",
				"К какому сроку это важно сделать?",
			},
		},
		{
			ID:          "reality",
			Title:       "Reality (Реальность)",
			Description: "Исследуйте текущую ситуацию, опираясь на факты.",
			Questions: []string{
				"Что происходит сейчас?",
				"Что мешает выполнить задачу в срок?",
				"Как ты сам оцениваешь ситуацию?",
			},
		},
		{
			ID:          "options",
			Title:       "Options (Варианты)",
			Description: "Помогите сотруднику найти варианты решения самостоятельно.",
			Questions: []string{
				"Что ты уже пробовал сделать?",
				"Какие еще есть варианты?",
				"Что бы ты сделал, если бы не было ограничений?",
			},
		},
		{
			ID:          "will",
			Title:       "Will (Намерение)",
			Description: "Зафиксируйте конкретные шаги, сроки и ответственность.",
			Questions: []string{
				"Что конкретно ты сделаешь и когда?",
				"Какая поддержка тебе нужна от меня?",
				"Как мы проверим, что план выполняется?",
			},
		},
	}
}

func theory() []domain.TheoryCard {
	return []domain.TheoryCard{
		{
			ID:           1,
			Category:     "Ситуация",
			Title:        "Факты вместо мнений",
			Content:      "Эффективная обратная связь строится на неоспоримых фактах (видел, слышал, читал), а не на интерпретациях. Мнения вызывают защитную реакцию, факты приглашают к диалогу.",
			Question:     "Какое утверждение является ФАКТОМ?",
			Options:      []string{"Ты безответственно подошел к отчету", "Ты сдал отчет на 2 дня позже срока"},
			CorrectIndex: 1,
			Explanation:  "Верно! \"Опоздание на 2 дня\" это измеримый факт. \"Безответственность\" это ваша оценка поведения.",
		},
		{
			ID:           2,
			Category:     "Действия",
			Title:        "Оценка действий",
			Content:      "Прежде чем давать обратную связь, определите различие между тем, как должно быть, и тем, как есть по факту. Это помогает сделать разговор объективным, а не эмоциональным.",
			Question:     "Что лучше сказать в начале разговора?",
			Options:      []string{"Почему ты постоянно нарушаешь сроки?", "Нашим стандартом является сдача до 18:00, но файл пришел в 20:30."},
			CorrectIndex: 1,
			Explanation:  "Именно. Вторая фраза просто констатирует разрыв между ожиданием и реальностью, не обвиняя человека.",
		},
		{
			ID:           3,
			Category:     "Причины",
			Title:        "Анализ причин",
			Content:      "Не всегда виновата лень. Часто причина в отсутствии навыков, неясных целях или нехватке ресурсов. Проверьте эти факторы до разговора.",
			Question:     "Сотрудник старается, но делает ошибки в новой программе. Какая это проблема?",
			Options:      []string{"Не хватает ему мотивации", "Слабые навыки, нет обучения"},
			CorrectIndex: 1,
			Explanation:  "Правильно. Если человек хочет (есть старание), но не может, ему нужно обучение, а не мотивационная беседа.",
		},
		{
			ID:           4,
			Category:     "Диалог",
			Title:        "Модель GROW",
			Content:      "Не давайте готовых советов сразу. Действуйте по шагам: Goal (Цель), Reality (Реальность), Options (Варианты), Will (Намерение). Это учит сотрудника думать самостоятельно.",
			Question:     "На каком этапе GROW-диалога уместен вопрос: \"Что ты уже пробовал сделать для решения этой задачи?\"",
			Options:      []string{"Reality (Реальность)", "Options (Варианты)"},
			CorrectIndex: 1,
			Explanation:  "Верно. На этапе Options мы исследуем варианты и ищем новые пути решения.",
		},
	}
}
