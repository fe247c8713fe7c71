package domain

// Plan тарифный план из конфигурации. Каталог read-only после старта.
type Plan struct {
	Key   string
	Name  string
	Price string // десятичная строка в основных единицах валюты, "19,90" или "7.00"
}
