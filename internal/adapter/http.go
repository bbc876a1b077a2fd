package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-media-hub/internal/config"
	"github.com/MKhiriev/go-media-hub/internal/logger"
	"github.com/MKhiriev/go-media-hub/internal/utils"
	"github.com/go-resty/resty/v2"
)

const messagesPath = "/v1/messages"

const (
	subjectSignUp      = "Your sign-up code"
	subjectNewPassword = "Your new password"
)

// mailMessage is the JSON body accepted by the gateway.
type mailMessage struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type httpMailSender struct {
	client *utils.HTTPClient

	sender string
	apiKey string

	logger *logger.Logger
}

// NewMailSender returns the HTTP gateway sender for cfg. When cfg.Endpoint is
// empty it returns a sender that only writes messages to the log, which is
// what local and test setups run with.
func NewMailSender(cfg config.Mail, log *logger.Logger) (MailSender, error) {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		log.Warn().Msg("mail endpoint is not configured, emails will be logged only")
		return &logMailSender{logger: log}, nil
	}

	baseURL, err := normalizeBaseURL(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}

	return &httpMailSender{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		sender: cfg.Sender,
		apiKey: strings.TrimSpace(cfg.APIKey),
		logger: log,
	}, nil
}

// normalizeBaseURL trims raw, prepends "http://" when no scheme is present,
// and strips a trailing slash.
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpMailSender) SendMailWithSignUpKey(ctx context.Context, email, key string) error {
	return h.send(ctx, mailMessage{
		To:      email,
		Subject: subjectSignUp,
		Body:    fmt.Sprintf("Your verification code is %s.", key),
	})
}

func (h *httpMailSender) SendMailWithNewPassword(ctx context.Context, email, password string) error {
	return h.send(ctx, mailMessage{
		To:      email,
		Subject: subjectNewPassword,
		Body:    fmt.Sprintf("Your password has been reset. New password: %s", password),
	})
}

func (h *httpMailSender) send(ctx context.Context, msg mailMessage) error {
	msg.From = h.sender

	resp, err := h.request(ctx).
		SetBody(msg).
		Post(messagesPath)
	if err != nil {
		h.logger.Err(err).Str("subject", msg.Subject).Msg("mail gateway request failed")
		return fmt.Errorf("%w: %w", ErrDelivery, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Err(err).Int("status", resp.StatusCode()).Str("subject", msg.Subject).Msg("mail gateway returned an error")
		return err
	}

	h.logger.Debug().Str("subject", msg.Subject).Msg("mail sent")
	return nil
}

func (h *httpMailSender) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx).SetHeader("Content-Type", "application/json")
	if h.apiKey != "" {
		req.SetAuthToken(h.apiKey)
	}
	return req
}
