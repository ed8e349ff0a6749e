package flow

import (
	"fmt"
	"strings"
)

// menuFor renders the correct prompt (and menu, if the step has one) for the
// session's current state. Every transition and the resume path go through
// it, so a reply can never disagree with the session.
func (e *Engine) menuFor(s *Session) Reply {
	if s.Awaiting != FieldNone {
		return e.freeTextPrompt(s)
	}

	switch s.Step {
	case StepIdle:
		return e.welcomeMenu()
	case StepIndustry:
		return e.industryMenu()
	case StepHashtags:
		return e.hashtagMenu(s)
	case StepPosition:
		return e.positionMenu()
	case StepSalary:
		return e.salaryMenu()
	case StepDescription:
		return textReply(stepHeader(StepDescription) + "\n" + promptDescription)
	case StepContact:
		return e.contactMenu()
	case StepLocation:
		return e.locationMenu()
	case StepConfirm:
		return e.confirmScreen(s)
	}
	return textReply(textBackToStart)
}

// freeTextPrompt re-asks for whichever field the session is waiting on.
func (e *Engine) freeTextPrompt(s *Session) Reply {
	switch s.Awaiting {
	case FieldSalary:
		return textReply(promptSalaryText)
	case FieldDescription:
		return textReply(stepHeader(StepDescription) + "\n" + promptDescription)
	case FieldContact:
		return textReply(contactPrompts["other"])
	case FieldLocation:
		return textReply(promptLocationText)
	}
	return textReply(textBackToStart)
}

func (e *Engine) welcomeMenu() Reply {
	return menuReply(textWelcome, [][]Button{
		row(Button{Label: "✅ Начать", Data: dataBegin}),
	})
}

func (e *Engine) resumeMenu() Reply {
	return menuReply(textResumeOffer, [][]Button{
		row(Button{Label: "✅ Продолжить", Data: dataResume}),
		row(Button{Label: "🆕 Начать заново", Data: dataRestart}),
	})
}

func (e *Engine) rulesMenu() Reply {
	return menuReply(textRules, [][]Button{
		row(Button{Label: "✅ Разместить вакансию", Data: dataBegin}),
		row(Button{Label: "🔒 Памятка", Data: dataShowSafety}),
		row(Button{Label: "◀️ В начало", Data: dataBackToStart}),
	})
}

func (e *Engine) safetyMenu() Reply {
	return menuReply(textSafety, [][]Button{
		row(Button{Label: "✅ Разместить вакансию", Data: dataBegin}),
		row(Button{Label: "📋 Правила", Data: dataShowRules}),
		row(Button{Label: "◀️ В начало", Data: dataBackToStart}),
	})
}

func (e *Engine) industryMenu() Reply {
	rows := make([][]Button, 0, len(e.catalog.Industries))
	for _, ind := range e.catalog.Industries {
		rows = append(rows, row(Button{Label: ind.Label, Data: prefixIndustry + ind.Key}))
	}
	return menuReply(stepHeader(StepIndustry)+"\n👇 Выбери направление:", rows)
}

// hashtagMenu renders the toggle menu for the draft's industry, marking the
// currently selected tags.
func (e *Engine) hashtagMenu(s *Session) Reply {
	hashtags := e.catalog.HashtagsFor(s.Draft.Industry)
	rows := make([][]Button, 0, len(hashtags)+1)
	for _, tag := range hashtags {
		label := tag
		if s.HasTag(tag) {
			label = "✅ " + tag
		}
		rows = append(rows, row(Button{Label: label, Data: prefixTag + tag}))
	}
	rows = append(rows, row(Button{Label: "✅ Готово", Data: dataTagsDone}))

	text := stepHeader(StepHashtags) + "\n🏷 Выбери один или несколько:"
	if len(s.SelectedTags) > 0 {
		text = fmt.Sprintf("Выбрано: %s\n\n%s", strings.Join(s.SelectedTags, ", "), text)
	}
	return menuReply(text, rows)
}

func (e *Engine) positionMenu() Reply {
	rows := make([][]Button, 0, len(e.catalog.Positions))
	for _, p := range e.catalog.Positions {
		rows = append(rows, row(Button{Label: p.Label, Data: prefixPosition + p.Key}))
	}
	return menuReply(stepHeader(StepPosition)+"\n📊 Выбери грейд:", rows)
}

func (e *Engine) salaryMenu() Reply {
	rows := make([][]Button, 0, len(e.catalog.SalaryBrackets)+1)
	for _, b := range e.catalog.SalaryBrackets {
		rows = append(rows, row(Button{Label: "💰 " + b.Label, Data: prefixSalary + b.Key}))
	}
	rows = append(rows, row(Button{Label: "✏️ Другое", Data: dataSalaryOther}))
	return menuReply(stepHeader(StepSalary)+"\n💵 Выбери вилку:", rows)
}

func (e *Engine) contactMenu() Reply {
	rows := make([][]Button, 0, len(e.catalog.ContactModes))
	for _, m := range e.catalog.ContactModes {
		rows = append(rows, row(Button{Label: m.Label, Data: prefixContact + m.Key}))
	}
	return menuReply(stepHeader(StepContact)+"\n📞 Укажи, как связаться:", rows)
}

func (e *Engine) locationMenu() Reply {
	rows := make([][]Button, 0, len(e.catalog.Locations)+1)
	for _, l := range e.catalog.Locations {
		rows = append(rows, row(Button{Label: l.Label, Data: prefixLocation + l.Key}))
	}
	rows = append(rows, row(Button{Label: "✏️ Другое", Data: dataLocOther}))
	return menuReply(stepHeader(StepLocation)+"\n📍 Где работа?", rows)
}

// confirmScreen renders the draft summary followed by the yes/cancel menu —
// two messages in one reply.
func (e *Engine) confirmScreen(s *Session) Reply {
	return Reply{Messages: []Message{
		{Text: summary(s.Draft)},
		{Text: textConfirmAsk, Keyboard: [][]Button{
			row(Button{Label: "✅ Да, отправить", Data: dataConfirmYes}),
			row(Button{Label: "❌ Отмена", Data: dataConfirmCancel}),
		}},
	}}
}
