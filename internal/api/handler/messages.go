package handler

import (
	"fmt"

	"github.com/recordhub/records-api/internal/core/domain"
)

// Plain-text bodies returned to clients. Creation messages keep their trailing
// space; existing clients compare them byte for byte.
const (
	msgUserCreated = "Пользователь записан в базу данных "
	msgUserUpdated = "Пользователь обновлен"
	msgUserDeleted = "Пользователь с id %d удален"

	msgOrderCreated = "Заказ записан в базу данных "
	msgOrderUpdated = "Заказ обновлен"
	msgOrderDeleted = "Заказ с id %d удален"

	msgOfferCreated = "Предложение записано в базу данных "
	msgOfferUpdated = "Предложение обновлено"
	msgOfferDeleted = "Предложение удалено"

	MsgMalformedInput = "Некорректные данные: "
	MsgInternal       = "Внутренняя ошибка сервера"
)

var notFound = map[domain.Resource]string{
	domain.ResourceUser:  "Пользователь не найден",
	domain.ResourceOrder: "Заказ не найден",
	domain.ResourceOffer: "Предложение не найдено",
}

var conflict = map[domain.Resource]string{
	domain.ResourceUser:  "Пользователь с id %d уже существует",
	domain.ResourceOrder: "Заказ с id %d уже существует",
	domain.ResourceOffer: "Предложение с id %d уже существует",
}

// NotFoundMessage returns the 404 body for resource.
func NotFoundMessage(resource domain.Resource) string {
	if msg, ok := notFound[resource]; ok {
		return msg
	}
	return "Запись не найдена"
}

// ConflictMessage returns the 409 body for a taken id.
func ConflictMessage(resource domain.Resource, id int64) string {
	if format, ok := conflict[resource]; ok {
		return fmt.Sprintf(format, id)
	}
	return fmt.Sprintf("Запись с id %d уже существует", id)
}
