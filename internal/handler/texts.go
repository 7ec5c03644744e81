package handler

// Keyboard commands
const (
	BtnNext        = "Дальше ⏭"
	BtnAddWord     = "Добавить слово ➕"
	BtnDeleteWord  = "Удалить слово🔙"
	BtnRestart     = "Перезапустить бота 🔄"
	BtnAdminDelete = "Удалить для всех ❌"
)

// Slash commands
const (
	CommandStart = "/start"
	CommandCards = "/cards"
)

const (
	textGreeting        = "Привет! Давайте изучать английский язык вместе! 🇬🇧"
	textCardPrompt      = "Выбери перевод слова:\n🇷🇺 %s"
	textCorrect         = "Отлично!❤\n%s"
	textIncorrect       = "Допущена ошибка!\nПопробуй ещё раз вспомнить слово 🇷🇺%s"
	textAllLearned      = "Поздравляем! Вы выучили все слова! 🎉\nВыучено слов: %d"
	textError           = "Произошла ошибка. Попробуйте еще раз."
	textAskWord         = "Введите слово на английском:"
	textEmptyWord       = "Слово не может быть пустым. Попробуйте еще раз."
	textAskTranslation  = "Теперь введите перевод:"
	textEmptyTranslate  = "Перевод не может быть пустым. Попробуйте еще раз."
	textDuplicate       = "Такое слово уже существует в базе данных."
	textWordAdded       = "Слово успешно добавлено! ✅"
	textWordForgotten   = "Слово успешно удалено из вашего списка! ✅"
	textNothingToDelete = "Не удалось удалить слово. Попробуйте позже."
	textWordDeleted     = "Слово удалено для всех пользователей! ✅"
	textAdminOnly       = "Удалять слова для всех может только администратор."
	textRestarting      = "Бот перезапускается..."
)

// controls are appended after the answer choices on every card keyboard
var controls = []string{BtnNext, BtnAddWord, BtnDeleteWord, BtnRestart, BtnAdminDelete}

func cardKeyboard(choices []string) []string {
	keyboard := make([]string, 0, len(choices)+len(controls))
	keyboard = append(keyboard, choices...)
	return append(keyboard, controls...)
}
