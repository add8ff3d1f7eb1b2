// File: internal/service/account.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fashion-store/internal/model"
	"fashion-store/internal/store"
)

var (
	hashPassword    = HashPassword
	comparePassword = ComparePassword
)

// Session 為註冊與登入成功後回傳給客戶端的內容
type Session struct {
	Token  string
	Role   model.Role
	UserID int
}

type RegisterInput struct {
	Email        string
	Password     string
	Role         model.Role
	BusinessName string
}

// Accounts 負責註冊與登入流程
type Accounts struct {
	users  UserStore
	tokens *TokenService
}

func NewAccounts(users UserStore, tokens *TokenService) *Accounts {
	return &Accounts{users: users, tokens: tokens}
}

// Register 建立帳號並簽發 token。
// 賣家未提供 businessName 仍允許註冊；顧客的 businessName 一律不保存
func (a *Accounts) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" || in.Role == "" {
		return nil, ErrValidation
	}
	if !in.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, in.Role)
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &model.User{
		Email:        email,
		PasswordHash: hash,
		Role:         in.Role,
	}
	if in.Role == model.RoleSeller && in.BusinessName != "" {
		name := in.BusinessName
		u.BusinessName = &name
	}

	created, err := a.users.CreateUser(ctx, u)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrDuplicateUser
		}
		return nil, fmt.Errorf("register: %w", err)
	}
	return a.session(created)
}

// Login 驗證帳密並簽發 token；查無帳號與密碼錯誤回傳同一個錯誤
func (a *Accounts) Login(ctx context.Context, email, password string) (*Session, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := a.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}
	if err := comparePassword(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return a.session(u)
}

func (a *Accounts) session(u *model.User) (*Session, error) {
	token, err := a.tokens.IssueAccessToken(u.ID, u.Role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &Session{Token: token, Role: u.Role, UserID: u.ID}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
