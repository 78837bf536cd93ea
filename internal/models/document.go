package models

// Document схемо-свободный документ хранилища: объявление о сдаче жилья
// или заявка на аренду. Структура полей не контролируется сервером.
type Document map[string]any
