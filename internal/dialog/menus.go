package dialog

import (
	"fmt"

	"daybook/internal/domain"
)

const backLabel = "Назад"

func row(buttons ...Button) []Button {
	return buttons
}

func btn(label, id string) Button {
	return Button{Label: label, ID: id}
}

// renderMenu returns the named menu as an in-place edit
func renderMenu(id domain.MenuID) Reply {
	switch id {
	case domain.MenuSchedule:
		return scheduleMenu()
	case domain.MenuEvents:
		return Reply{
			Text: "События:",
			Mode: ModeEdit,
			Buttons: [][]Button{
				row(btn("Добавить событие", idEventsAdd)),
				row(btn("Просмотреть события", idEventsView)),
				row(btn(backLabel, idBackMain)),
			},
		}
	case domain.MenuQuestions:
		return Reply{
			Text: "Входящие:",
			Mode: ModeEdit,
			Buttons: [][]Button{
				row(btn("Добавить вопрос", idQuestionAdd)),
				row(btn("Просмотреть входящие", idQuestionView)),
				row(btn(backLabel, idBackMain)),
			},
		}
	case domain.MenuDependencies:
		return Reply{
			Text: "Меню зависимостей:",
			Mode: ModeEdit,
			Buttons: [][]Button{
				row(btn("Телефон", idPhoneMenu)),
				row(btn("Сладкое", idSweetsMenu)),
				row(btn("Плохие слова", idBadWordsMenu)),
				row(btn(backLabel, idBackMain)),
			},
		}
	case domain.MenuPhone:
		return categoryMenu("Телефон: выберите действие:", idPhoneAdd, "Просмотреть отчёт", idPhoneView)
	case domain.MenuSweets:
		return categoryMenu("Сладкое: выберите действие:", idSweetsAdd, "Просмотреть записи", idSweetsView)
	case domain.MenuBadWords:
		return categoryMenu("Плохие слова: выберите действие:", idBadWordsAdd, "Просмотреть записи", idBadWordsView)
	default:
		return mainMenu()
	}
}

func mainMenu() Reply {
	return Reply{
		Text: "<b>Главное меню</b>\nВыберите раздел:",
		HTML: true,
		Mode: ModeEdit,
		Buttons: [][]Button{
			row(btn("📅 Расписание", idMenuSchedule), btn("📌 События", idMenuEvents)),
			row(btn("📥 Входящие", idMenuQuestions), btn("🚭 Зависимости", idMenuDependencies)),
		},
	}
}

// scheduleMenu lays the weekdays and the exact-date control out in two rows
// of four
func scheduleMenu() Reply {
	keys := append(append([]string(nil), domain.Weekdays...), domain.DateKey)
	var rows [][]Button
	for i := 0; i < len(keys); i += 4 {
		end := i + 4
		if end > len(keys) {
			end = len(keys)
		}
		var r []Button
		for _, key := range keys[i:end] {
			r = append(r, btn(key, prefixDay+key))
		}
		rows = append(rows, r)
	}
	rows = append(rows, row(btn(backLabel, idBackMain)))

	return Reply{Text: "Выберите день:", Mode: ModeEdit, Buttons: rows}
}

func categoryMenu(title, addID, viewLabel, viewID string) Reply {
	return Reply{
		Text: title,
		Mode: ModeEdit,
		Buttons: [][]Button{
			row(btn("Добавить запись", addID)),
			row(btn(viewLabel, viewID)),
			row(btn(backLabel, idMenuDependencies)),
		},
	}
}

// dayMenu offers view/edit for a present schedule and add for an absent one
func dayMenu(key string, present bool) Reply {
	if present {
		return Reply{
			Text: fmt.Sprintf("Для %s установлено расписание.", key),
			Mode: ModeEdit,
			Buttons: [][]Button{
				row(btn("Просмотреть", prefixView+key), btn("Изменить", prefixEdit+key)),
				row(btn(backLabel, idMenuSchedule)),
			},
		}
	}
	return Reply{
		Text: fmt.Sprintf("Расписание для %s отсутствует.", key),
		Mode: ModeEdit,
		Buttons: [][]Button{
			row(btn("Добавить", prefixAdd+key)),
			row(btn(backLabel, idMenuSchedule)),
		},
	}
}

// backTo returns a single-button keyboard leading to id
func backTo(id string) [][]Button {
	return [][]Button{row(btn(backLabel, id))}
}

// asNew turns a reply into a new message
func asNew(r Reply) Reply {
	r.Mode = ModeSend
	return r
}

func send(text string) Reply {
	return Reply{Text: text, Mode: ModeSend}
}
