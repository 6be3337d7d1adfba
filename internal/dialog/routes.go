package dialog

import (
	"daybook/internal/domain"
	"daybook/internal/router"
)

// Button identifiers
const (
	idBackMain         = "back_main"
	idMenuSchedule     = "menu_schedule"
	idMenuEvents       = "menu_events"
	idMenuQuestions    = "menu_questions"
	idMenuDependencies = "menu_dependencies"
	idExactDate        = prefixDay + domain.DateKey
	idEventsAdd        = "events_add"
	idEventsView       = "events_view"
	idQuestionAdd      = "ques_add"
	idQuestionView     = "ques_view"
	idPhoneMenu        = "dep_phone_menu"
	idPhoneAdd         = "dep_phone_add"
	idPhoneView        = "dep_phone_view"
	idSweetsMenu       = "dep_sweets_menu"
	idSweetsAdd        = "dep_sweets_add"
	idSweetsView       = "dep_sweets_view"
	idBadWordsMenu     = "dep_badwords_menu"
	idBadWordsAdd      = "dep_badwords_add"
	idBadWordsView     = "dep_badwords_view"

	prefixDay  = "day_"
	prefixView = "view_"
	prefixAdd  = "add_"
	prefixEdit = "edit_"
)

// Actions
const (
	actMainMenu         router.Action = "main_menu"
	actScheduleMenu     router.Action = "schedule_menu"
	actEventsMenu       router.Action = "events_menu"
	actQuestionsMenu    router.Action = "questions_menu"
	actDependenciesMenu router.Action = "dependencies_menu"
	actExactDate        router.Action = "exact_date"
	actDaySelected      router.Action = "day_selected"
	actViewSchedule     router.Action = "view_schedule"
	actScheduleInput    router.Action = "schedule_input"
	actEventsAdd        router.Action = "events_add"
	actEventsView       router.Action = "events_view"
	actQuestionAdd      router.Action = "question_add"
	actQuestionView     router.Action = "question_view"
	actPhoneMenu        router.Action = "phone_menu"
	actPhoneAdd         router.Action = "phone_add"
	actPhoneView        router.Action = "phone_view"
	actSweetsMenu       router.Action = "sweets_menu"
	actSweetsAdd        router.Action = "sweets_add"
	actSweetsView       router.Action = "sweets_view"
	actBadWordsMenu     router.Action = "badwords_menu"
	actBadWordsAdd      router.Action = "badwords_add"
	actBadWordsView     router.Action = "badwords_view"
)

type actionFunc func(ev Event, m router.Match) []Reply

type route struct {
	rule   router.Rule
	handle actionFunc
}

func exact(action router.Action, id string, fn actionFunc) route {
	return route{rule: router.Rule{Action: action, Exact: id}, handle: fn}
}

// routes is the full identifier table. Exact rules always win over prefix
// rules; the day_ prefix leaves the exact-date control to its own entry.
func (e *Engine) routes() []route {
	return []route{
		exact(actMainMenu, idBackMain, e.showMenu(domain.MenuMain)),
		exact(actScheduleMenu, idMenuSchedule, e.showMenu(domain.MenuSchedule)),
		exact(actEventsMenu, idMenuEvents, e.showMenu(domain.MenuEvents)),
		exact(actQuestionsMenu, idMenuQuestions, e.showMenu(domain.MenuQuestions)),
		exact(actDependenciesMenu, idMenuDependencies, e.showMenu(domain.MenuDependencies)),

		exact(actExactDate, idExactDate, e.startDialog(exactDateDialog)),
		{
			rule: router.Rule{
				Action:   actDaySelected,
				Prefixes: []string{prefixDay},
				Exclude:  []string{domain.DateKey},
			},
			handle: e.daySelected,
		},
		{
			rule:   router.Rule{Action: actViewSchedule, Prefixes: []string{prefixView}},
			handle: e.viewSchedule,
		},
		{
			rule:   router.Rule{Action: actScheduleInput, Prefixes: []string{prefixAdd, prefixEdit}},
			handle: e.scheduleInputEntry,
		},

		exact(actEventsAdd, idEventsAdd, e.startDialog(eventDialog)),
		exact(actEventsView, idEventsView, e.viewEvents),
		exact(actQuestionAdd, idQuestionAdd, e.startDialog(questionDialog)),
		exact(actQuestionView, idQuestionView, e.viewQuestions),

		exact(actPhoneMenu, idPhoneMenu, e.showMenu(domain.MenuPhone)),
		exact(actPhoneAdd, idPhoneAdd, e.startDialog(hoursDialog)),
		exact(actPhoneView, idPhoneView, e.viewUsageReport),
		exact(actSweetsMenu, idSweetsMenu, e.showMenu(domain.MenuSweets)),
		exact(actSweetsAdd, idSweetsAdd, e.startDialog(sweetsDialog)),
		exact(actSweetsView, idSweetsView, e.viewListing(domain.CategorySweets, idSweetsMenu)),
		exact(actBadWordsMenu, idBadWordsMenu, e.showMenu(domain.MenuBadWords)),
		exact(actBadWordsAdd, idBadWordsAdd, e.startDialog(badWordsDialog)),
		exact(actBadWordsView, idBadWordsView, e.viewListing(domain.CategoryBadWords, idBadWordsMenu)),
	}
}
