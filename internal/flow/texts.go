package flow

import (
	"fmt"
	"strings"
)

// All user-facing copy lives here. Text content is presentation: the
// transition logic never branches on it.

const textWelcome = `👋 Привет! Я — бот канала @DreamITJob

Помогу бесплатно разместить вакансию.

📢 Аудитория канала — IT, Fintech, high-risk.

💡 Что нужно знать
• Всё бесплатно
• Вакансия пройдёт модерацию

📋 Правила
• Тематика: только IT / Fintech / high-risk
• Без эмодзи, ссылок, капслока
• NDA разрешён

🔍 Полные правила — /rules

✅ Готовы? Нажимайте кнопку!`

const textRules = `📮 ПОЛНЫЕ ПРАВИЛА

Нарушение = предупреждение / бан 24ч / блокировка

1. Тематика
• Только IT / Fintech / high-risk
• Запрещены: adult, nutra, pharma, схемный трафик
• Запрещены финансы: бинарные опционы, CFD, Forex, контакты с игроками

2. Оформление
• Без эмодзи, CAPS LOCK
• Запрещены !!!, ссылки, упоминания тг-ботов

3. Компания
• NDA разрешён
• Запрещено выдумывать название

4. Частота
• Одну вакансию можно присылать не чаще 1 раза в 24 часа

5. Ответственность
• Нарушение правил = предупреждение / бан 24ч / блокировка`

const textSafety = `🔒 Памятка для соискателей

Мы проверяем вакансии и удаляем явный скам, но не можем гарантировать 100% безопасность.

⛔️ Обратите внимание:
• Работодатели не берут деньги за трудоустройство
• Схемный трафик — уголовное преступление
• Не передавайте личные платёжные данные

✅ Рекомендуем:
• Проверить наличие сайта/соцсетей у компании
• Искать информацию о работодателе

❗️ Мы не несём ответственности за последствия сотрудничества с работодателями.`

const (
	textResumeOffer   = "🔄 У вас есть незаконченная вакансия. Хотите продолжить или начать заново?"
	textCancelled     = "❌ Отменено. /start если передумаешь"
	textDuplicate     = "❌ Эта вакансия уже отправлялась менее 24ч назад."
	textEmptyTags     = "❌ Выбери хотя бы один хэштег!"
	textBackToStart   = "👋 Привет! Я — бот канала @DreamITJob\n\nНапишите /start чтобы начать"
	textTryAgain      = "\nПопробуй ещё раз:"
	textConfirmAsk    = "Всё верно?"
	textNewVacancy    = "🆕 Новая вакансия"
	textSubmitted     = `✅ Спасибо! Вакансия отправлена на модерацию.

📢 Появится в @DreamITJob после проверки.

🆕 /new — новая вакансия
📋 /rules — правила
🔒 /safety — памятка`
)

// Free-text prompts, keyed by the awaited field.
const (
	promptSalaryText   = "✏️ Введи зарплату вручную\n\nНапример: «от 3000$», «2500-3500$»\n\n👇 Введи текст:"
	promptDescription  = "📝 Напиши подробное описание (задачи, требования, условия)\n\n✏️ Введи текст (без эмодзи, ссылок, капслока):"
	promptLocationText = "✏️ Введи локацию вручную (город, страна):"
)

// Contact prompts, keyed by contact-mode wire key.
var contactPrompts = map[string]string{
	"username": "📱 Введите @username:",
	"email":    "📧 Введите email:",
	"other":    "✏️ Введите контакт (WhatsApp, Signal и т.д.):",
}

// Human-readable field labels used in validation rejections.
var fieldLabels = map[Field]string{
	FieldSalary:      "зарплата",
	FieldDescription: "описание",
	FieldContact:     "контакт",
	FieldLocation:    "локация",
}

// stepHeader renders the "Шаг N из 8 — Название" progress line.
func stepHeader(step Step) string {
	titles := map[Step]string{
		StepIndustry:    "Сфера",
		StepHashtags:    "Хэштеги",
		StepPosition:    "Уровень",
		StepSalary:      "Зарплата",
		StepDescription: "Описание",
		StepContact:     "Контакт",
		StepLocation:    "Локация",
		StepConfirm:     "Проверка",
	}
	n, total := StepNumber(step)
	return fmt.Sprintf("Шаг %d из %d — %s", n, total, titles[step])
}

// summary renders the full draft for the confirm screen.
func summary(d Draft) string {
	var b strings.Builder
	b.WriteString("📋 Проверьте данные:\n\n")
	fmt.Fprintf(&b, "🏢 Компания: %s\n", d.Company)
	fmt.Fprintf(&b, "📊 Сфера: %s\n", d.Industry)
	fmt.Fprintf(&b, "🏷 Хэштеги: %s\n", strings.Join(d.Tags, " "))
	fmt.Fprintf(&b, "👤 Должность: %s\n", d.Position)
	fmt.Fprintf(&b, "💰 Зарплата: %s\n", d.Salary)
	fmt.Fprintf(&b, "📝 Описание:\n%s\n", d.Description)
	fmt.Fprintf(&b, "📞 Контакт: %s\n", d.Contact)
	fmt.Fprintf(&b, "📍 Локация: %s", d.Location)
	return b.String()
}

// moderatorMessage renders the single message forwarded to the moderation
// chat for an accepted draft.
func moderatorMessage(d Draft, submissionID string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "💼 %s\n\n", d.Position)
	fmt.Fprintf(&b, "Компания: %s\n", d.Company)
	fmt.Fprintf(&b, "Сфера: %s\n", d.Industry)
	fmt.Fprintf(&b, "💰 %s\n", d.Salary)
	fmt.Fprintf(&b, "📍 %s\n\n", d.Location)
	fmt.Fprintf(&b, "%s\n\n", d.Description)
	fmt.Fprintf(&b, "📞 %s\n\n", d.Contact)
	b.WriteString(strings.Join(d.Tags, " "))
	fmt.Fprintf(&b, "\n\nID заявки: %s", submissionID)
	return b.String()
}
