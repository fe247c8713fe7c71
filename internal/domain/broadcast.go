package domain

import "time"

// Broadcast рекламная рассылка в чат аудитории с фиксированным интервалом
type Broadcast struct {
	Key      string
	Caption  string
	Interval time.Duration
	Buttons  []LinkButton // до трёх URL-кнопок под сообщением
}

// LinkButton URL-кнопка под сообщением: каталог, рекламные рассылки
type LinkButton struct {
	Text string
	URL  string
}
