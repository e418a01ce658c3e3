package models

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"fixstore/tools"

	"golang.org/x/crypto/bcrypt"
)

/************************************************
/**** MARK: USER ROLES ****/
/************************************************/
const USER_ROLE_NORMAL = "user"
const USER_ROLE_ADMIN = "admin"

// User representa um usuario no sistema.
// A senha guarda apenas o hash bcrypt e nunca é serializada pro cliente.
// Os campos PasswordReset* formam o "ticket" de recuperação de senha:
// ou os dois estão preenchidos, ou os dois estão vazios.
type User struct {
	ID                   int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name                 string     `gorm:"not null" json:"name" form:"name"`
	Email                string     `gorm:"not null;unique" json:"email" form:"email"`
	Password             string     `gorm:"not null" json:"-"`
	Role                 string     `gorm:"not null;default:'user'" json:"role"`
	PasswordResetToken   string     `gorm:"default:''" json:"-"`
	PasswordResetExpires *time.Time `json:"-"`
	CreatedAt            *time.Time `json:"created_at"`
	UpdatedAt            *time.Time `json:"updated_at"`
}

func (user User) IsAdmin() bool {
	return user.Role == USER_ROLE_ADMIN
}

// NormalizeEmail deixa o email em formato canônico (minúsculo, sem espaços).
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SetPassword troca o hash da senha e invalida qualquer ticket de reset
// pendente. Não persiste; quem chama decide a transação.
func (user *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hash)
	user.ClearPasswordReset()
	return nil
}

// CheckPassword compara o candidato contra o hash armazenado (bcrypt já faz
// a comparação em tempo constante).
func (user User) CheckPassword(candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(candidate)) == nil
}

// NewPasswordResetToken gera o token de reset em texto puro e guarda no
// usuário apenas o hash + expiração. O texto puro vai por email e nunca
// é armazenado.
func (user *User) NewPasswordResetToken(validity time.Duration) string {
	clear := tools.RandomHex(32)
	user.PasswordResetToken = HashResetToken(clear)
	exp := time.Now().Add(validity)
	user.PasswordResetExpires = &exp
	return clear
}

func (user *User) ClearPasswordReset() {
	user.PasswordResetToken = ""
	user.PasswordResetExpires = nil
}

// HashResetToken é um hash rápido de propósito único: o token já é aleatório
// de alta entropia, então sha256 basta (diferente da senha, que usa bcrypt).
func HashResetToken(clear string) string {
	sum := sha256.Sum256([]byte(clear))
	return hex.EncodeToString(sum[:])
}
