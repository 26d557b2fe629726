package service

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"

	"github.com/clubsite/server/config"
	"github.com/clubsite/server/util/common"
)

const (
	recaptchaVerifyURL = "https://recaptcha.net/recaptcha/api/siteverify"
	// Scores below this are treated as bots.
	recaptchaMinScore = 0.5
)

// CaptchaService verifies reCAPTCHA tokens accompanying public message posts.
type CaptchaService struct {
	client *http.Client
}

func NewCaptchaService() *CaptchaService {
	return &CaptchaService{client: &http.Client{Timeout: 10 * time.Second}}
}

type recaptchaResponse struct {
	Success bool    `json:"success"`
	Score   float64 `json:"score"`
}

// Verify checks the token with the reCAPTCHA verification endpoint. With no
// secret configured verification is skipped, which keeps local development
// working without external credentials.
func (s *CaptchaService) Verify(token string) error {
	secret := config.GetRecaptchaSecret()
	if secret == "" {
		return nil
	}
	if token == "" {
		return common.ValidationErrorf("reCAPTCHA token is missing")
	}

	form := url.Values{}
	form.Set("secret", secret)
	form.Set("response", token)
	resp, err := s.client.PostForm(recaptchaVerifyURL, form)
	if err != nil {
		return fmt.Errorf("reCAPTCHA verification request failed: %w", err)
	}
	defer resp.Body.Close()

	var result recaptchaResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("reCAPTCHA verification response unreadable: %w", err)
	}
	if !result.Success || result.Score < recaptchaMinScore {
		return common.ValidationErrorf("reCAPTCHA verification failed")
	}
	return nil
}
