// Package models содержит доменные модели системы: учетную запись пользователя,
// профиль и схемо-свободные документы каталога объявлений.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// DefaultAccountRole роль, назначаемая профилю при регистрации.
const DefaultAccountRole = "default"

// User представляет учетную запись пользователя.
//
// Поле PasswordHash хранит только bcrypt-хэш пароля (bson-поле "password",
// историческое имя) и никогда не сериализуется в JSON.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password" json:"-"`
	Profile      Profile            `bson:"profileData" json:"profileData"`
}

// Profile произвольные поля профиля пользователя.
// Единственное поле, на которое опирается система, — accountRole.
type Profile map[string]any

// AccountRole возвращает роль из профиля или пустую строку, если она не задана.
func (p Profile) AccountRole() string {
	role, _ := p["accountRole"].(string)
	return role
}

// UserKey ключ поиска учетной записи. Исторически операции адресуют
// пользователя либо идентификатором хранилища, либо email; заполняется
// ровно одно из полей.
type UserKey struct {
	ID    string
	Email string
}

// UserKeyByID возвращает ключ поиска по идентификатору хранилища.
func UserKeyByID(id string) UserKey {
	return UserKey{ID: id}
}

// UserKeyByEmail возвращает ключ поиска по email.
func UserKeyByEmail(email string) UserKey {
	return UserKey{Email: email}
}
