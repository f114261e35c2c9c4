package main

import (
	"errors"
	"net/http"

	"github.com/dev-760/portfolio-v2/internal/catalog"
	"github.com/dev-760/portfolio-v2/internal/contact"
	"github.com/dev-760/portfolio-v2/internal/i18n"
	mw "github.com/dev-760/portfolio-v2/internal/middleware"
	"github.com/dev-760/portfolio-v2/internal/nav"
)

// ContactView drives the contact page and its form fragment.
type ContactView struct {
	Email     string
	Instagram string
	LinkedIn  string
	Action    string
	CSRF      string

	Form contact.Message
	// Errors maps form field names to translation keys.
	Errors  map[string]string
	Alert   string
	Receipt *contact.Receipt
}

func newContactView(r *http.Request, lang i18n.Locale, cv catalog.CV) ContactView {
	return ContactView{
		Email:     cv.Email,
		Instagram: cv.Instagram,
		LinkedIn:  cv.LinkedIn,
		Action:    nav.Href(lang, "/contact"),
		CSRF:      mw.CSRFToken(r.Context()),
	}
}

// ContactHandler renders the contact page.
func ContactHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r.Context())
	vm := newPage(r, site.Bundle().T(lang, "contact.title"), "", "")
	vm.Contact = newContactView(r, lang, site.Catalog().CV())
	renderPage(w, r, "contact", vm)
}

// ContactSubmitHandler validates and acknowledges a contact message. htmx
// requests get the form fragment back; others the full page.
func ContactSubmitHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r.Context())
	cv := newContactView(r, lang, site.Catalog().CV())
	status := http.StatusOK

	if err := r.ParseForm(); err != nil {
		cv.Alert = "contact.errors.invalid"
		status = http.StatusBadRequest
	} else {
		msg := contact.Message{
			Name:    r.PostForm.Get("name"),
			Email:   r.PostForm.Get("email"),
			Message: r.PostForm.Get("message"),
			Website: r.PostForm.Get("website"),
		}
		receipt, normalized, err := contactService.Submit(mw.ClientIP(r), msg)
		cv.Form = normalized
		switch {
		case err == nil:
			cv.Receipt = &receipt
			cv.Form = contact.Message{}
		case errors.Is(err, contact.ErrRateLimited):
			cv.Alert = "contact.errors.rateLimited"
			status = http.StatusTooManyRequests
		default:
			if fields := contact.FieldErrors(err); fields != nil {
				cv.Errors = make(map[string]string, len(fields))
				for field, code := range fields {
					cv.Errors[field] = "contact.errors." + code
				}
			} else {
				cv.Alert = "contact.errors.invalid"
			}
			status = http.StatusUnprocessableEntity
		}
	}

	if mw.IsHTMX(r.Context()) {
		// htmx only swaps 2xx responses by default
		renderTemplate(w, r, "frag_contact_form", map[string]any{"Lang": lang, "Contact": cv})
		return
	}
	vm := newPage(r, site.Bundle().T(lang, "contact.title"), "", "")
	vm.Contact = cv
	renderPageStatus(w, r, status, "contact", vm)
}
