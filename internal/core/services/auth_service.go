package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

var ErrInvalidInitData = errors.New("invalid telegram init data")

// TelegramUser is the user object embedded in the mini-app init data.
type TelegramUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	Username  string `json:"username"`
	PhotoURL  string `json:"photo_url"`
}

type AuthService struct {
	botToken string
	profiles *ProfileService
	tokens   *TokenService
}

func NewAuthService(botToken string, profiles *ProfileService, tokens *TokenService) *AuthService {
	return &AuthService{
		botToken: botToken,
		profiles: profiles,
		tokens:   tokens,
	}
}

// Login verifies the mini-app's signed initData, upserts the profile and
// exchanges it for a JWT the HTTP API accepts.
func (s *AuthService) Login(ctx context.Context, initData string) (string, *TelegramUser, error) {
	tgUser, err := ValidateInitData(initData, s.botToken)
	if err != nil {
		return "", nil, err
	}

	if _, err := s.profiles.Register(ctx, tgUser.ID, tgUser.FirstName, tgUser.Username); err != nil {
		return "", nil, fmt.Errorf("auth service: failed to register user: %w", err)
	}

	token, err := s.tokens.GenerateToken(tgUser.ID)
	if err != nil {
		return "", nil, err
	}

	return token, tgUser, nil
}

// ValidateInitData checks the Telegram WebApp signature: the hash field
// must equal HMAC-SHA256 of the sorted key=value lines under the secret
// key HMAC-SHA256("WebAppData", botToken).
func ValidateInitData(initData, botToken string) (*TelegramUser, error) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, ErrInvalidInitData
	}

	gotHash := values.Get("hash")
	if gotHash == "" {
		return nil, ErrInvalidInitData
	}
	values.Del("hash")

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+values.Get(k))
	}
	dataCheckString := strings.Join(lines, "\n")

	secretMac := hmac.New(sha256.New, []byte("WebAppData"))
	secretMac.Write([]byte(botToken))
	secretKey := secretMac.Sum(nil)

	mac := hmac.New(sha256.New, secretKey)
	mac.Write([]byte(dataCheckString))
	wantHash := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(wantHash), []byte(gotHash)) {
		return nil, ErrInvalidInitData
	}

	var user TelegramUser
	if err := json.Unmarshal([]byte(values.Get("user")), &user); err != nil || user.ID == 0 {
		return nil, ErrInvalidInitData
	}

	return &user, nil
}
