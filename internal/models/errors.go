package models

import "errors"

// Доменные ошибки. Хранилище и сервисы возвращают их обернутыми,
// обработчики проверяют через errors.Is и превращают в сообщение пользователю.
var (
	// ErrNotFound запись не найдена
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail почта уже зарегистрирована
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrBadCredentials неверная почта или пароль; обработчики не различают,
	// что именно не совпало
	ErrBadCredentials = errors.New("incorrect email or password")
	// ErrAdminExists администратор уже создан, повторная настройка запрещена
	ErrAdminExists = errors.New("admin already exists")
	// ErrValidation обязательное поле отсутствует или некорректно
	ErrValidation = errors.New("validation failed")
)
