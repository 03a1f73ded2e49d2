package view

const StartMessage = `🔐 <b>Проверка MPIN</b>

Отправьте PIN из 4 или 6 цифр и, по желанию, три даты:
<code>/check PIN [дата рождения] [дата рождения супруга] [годовщина]</code>

Даты в формате <code>YYYY-MM-DD</code> или <code>DD/MM/YYYY</code>, пропуск - <code>-</code>.
Пример: <code>/check 0201 02/01/1998 - 2020-10-31</code>`

const (
	CheckUsage    = "❌ Использование: /check <code>PIN</code> [дата] [дата] [дата]"
	CheckStrong   = "✅ <b>STRONG</b>"
	CheckWeak     = "⚠️ <b>WEAK</b>\n\n• %s"
	CheckRejected = "❌ %s"
	InternalError = "❌ Внутренняя ошибка, попробуйте позже"
)
