// Package contact validates and acknowledges messages sent from the contact
// form. Messages are logged with a reference and never stored.
package contact

import (
	"errors"
	"html"
	"regexp"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/microcosm-cc/bluemonday"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ErrRateLimited is returned when a client sends too many messages.
var ErrRateLimited = errors.New("contact: rate limited")

// Field error codes; the web layer maps them to translated strings.
const (
	CodeRequired = "required"
	CodeEmail    = "email"
	CodeLength   = "length"
)

const (
	maxName    = 120
	maxMessage = 4000
	clientTTL  = 30 * time.Minute
)

var emailFormat = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Message is a submitted contact form.
type Message struct {
	Name    string
	Email   string
	Message string
	// Website is a honeypot field hidden from people.
	Website string
}

// Normalize trims whitespace and strips markup from every field.
func (m Message) Normalize(p *bluemonday.Policy) Message {
	clean := func(s string) string {
		// Sanitize escapes entities; the template layer escapes again on output.
		return strings.TrimSpace(html.UnescapeString(p.Sanitize(strings.TrimSpace(s))))
	}
	return Message{
		Name:    clean(m.Name),
		Email:   strings.ToLower(strings.TrimSpace(m.Email)),
		Message: clean(m.Message),
		Website: strings.TrimSpace(m.Website),
	}
}

// Validate reports field errors keyed by field name.
func (m Message) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Name,
			validation.Required.ErrorObject(fieldError(CodeRequired)),
			validation.By(maxRunes(maxName)),
		),
		validation.Field(&m.Email,
			validation.Required.ErrorObject(fieldError(CodeRequired)),
			validation.Match(emailFormat).ErrorObject(fieldError(CodeEmail)),
		),
		validation.Field(&m.Message,
			validation.Required.ErrorObject(fieldError(CodeRequired)),
			validation.By(maxRunes(maxMessage)),
		),
	)
}

func fieldError(code string) validation.Error {
	return validation.NewError(code, code)
}

func maxRunes(n int) validation.RuleFunc {
	return func(value any) error {
		s, _ := value.(string)
		if utf8.RuneCountInString(s) > n {
			return fieldError(CodeLength)
		}
		return nil
	}
}

// FieldErrors flattens a validation error into field -> code. It returns nil
// for errors that are not field errors.
func FieldErrors(err error) map[string]string {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for field, ferr := range verrs {
		var ve validation.Error
		if errors.As(ferr, &ve) {
			out[field] = ve.Code()
			continue
		}
		out[field] = ferr.Error()
	}
	return out
}

// Receipt acknowledges an accepted message.
type Receipt struct {
	Reference  string
	ReceivedAt time.Time
	// Discarded is set when the honeypot was filled; the sender still sees a
	// normal receipt.
	Discarded bool
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Service accepts contact messages.
type Service struct {
	logger *zap.Logger
	policy *bluemonday.Policy
	limit  rate.Limit
	burst  int
	now    func() time.Time

	mu      sync.Mutex
	clients map[string]*client
}

// NewService returns a service allowing perMinute messages per client with
// the given burst.
func NewService(logger *zap.Logger, perMinute float64, burst int) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if burst < 1 {
		burst = 1
	}
	return &Service{
		logger:  logger,
		policy:  bluemonday.StrictPolicy(),
		limit:   rate.Limit(perMinute / 60),
		burst:   burst,
		now:     time.Now,
		clients: map[string]*client{},
	}
}

// Submit validates msg from clientKey (usually the remote IP), logs it and
// returns a receipt. The normalized message is returned with validation
// errors so the form can be re-rendered.
func (s *Service) Submit(clientKey string, msg Message) (Receipt, Message, error) {
	msg = msg.Normalize(s.policy)
	if err := msg.Validate(); err != nil {
		return Receipt{}, msg, err
	}
	if !s.allow(clientKey) {
		s.logger.Warn("contact rate limited", zap.String("client", clientKey))
		return Receipt{}, msg, ErrRateLimited
	}
	now := s.now().UTC()
	receipt := Receipt{
		Reference:  ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
		ReceivedAt: now,
		Discarded:  msg.Website != "",
	}
	if receipt.Discarded {
		s.logger.Info("contact honeypot filled", zap.String("reference", receipt.Reference))
		return receipt, msg, nil
	}
	s.logger.Info("contact message received",
		zap.String("reference", receipt.Reference),
		zap.String("name", msg.Name),
		zap.String("email", msg.Email),
		zap.Int("length", utf8.RuneCountInString(msg.Message)),
	)
	return receipt, msg, nil
}

func (s *Service) allow(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for k, c := range s.clients {
		if now.Sub(c.lastSeen) > clientTTL {
			delete(s.clients, k)
		}
	}
	c, ok := s.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.clients[key] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}
