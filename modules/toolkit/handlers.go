package toolkit

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/flxhelpers/flxhelpers/pkg/email"
	"github.com/flxhelpers/flxhelpers/pkg/password"
	"github.com/flxhelpers/flxhelpers/pkg/slug"
	"github.com/flxhelpers/flxhelpers/pkg/textutil"
	"github.com/flxhelpers/flxhelpers/pkg/validator"
)

type ruleRequest struct {
	Field      string `json:"field"`
	Required   *bool  `json:"required"`
	Validation string `json:"validation"`
	// VerifyDomain additionally runs the email domain checker on the value.
	VerifyDomain bool `json:"verify_domain"`
}

type validateRequest struct {
	Body  validator.Record `json:"body"`
	Rules []ruleRequest    `json:"rules"`
}

type validateResponse struct {
	Data validator.Record `json:"data"`
}

func (s *Service) validate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	rules := make([]validator.FieldRule, 0, len(req.Rules))
	for _, rr := range req.Rules {
		if textutil.IsBlank(rr.Field) {
			writeError(w, r, s.logger, fmt.Errorf("%w: rules[].field", ErrMissingField))
			return
		}
		kind, err := validator.ParseKind(rr.Validation)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		rule := validator.FieldRule{
			Field:    rr.Field,
			Required: rr.Required == nil || *rr.Required,
			Kind:     kind,
		}
		if rr.VerifyDomain {
			rule = rule.WithCheckContext(s.checker.Predicate())
		}
		rules = append(rules, rule)
	}

	if req.Body == nil {
		req.Body = validator.Record{}
	}

	data, err := validator.Validate(r.Context(), req.Body, rules...)
	if err != nil {
		if verrs := validator.ExtractValidationErrors(err); verrs != nil {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
				Error:  verrs.Error(),
				Errors: verrs.Messages(),
			})
			return
		}
		writeError(w, r, s.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, validateResponse{Data: data})
}

type emailRequest struct {
	Email string `json:"email"`
}

type emailResponse struct {
	email.Result
	Sanitized string `json:"sanitized"`
}

func (s *Service) checkEmail(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, emailResponse{
		Result:    s.checker.Validate(r.Context(), req.Email),
		Sanitized: email.Sanitize(req.Email),
	})
}

type slugRequest struct {
	Text string `json:"text"`
}

type slugResponse struct {
	Slug  string `json:"slug"`
	Valid bool   `json:"valid"`
}

func (s *Service) makeSlug(w http.ResponseWriter, r *http.Request) {
	var req slugRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	out := slug.Make(req.Text)
	writeJSON(w, http.StatusOK, slugResponse{Slug: out, Valid: slug.Valid(out)})
}

type hashRequest struct {
	Password string `json:"password"`
}

type hashResponse struct {
	Hash string `json:"hash"`
}

func (s *Service) hashPassword(w http.ResponseWriter, r *http.Request) {
	var req hashRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	hash, err := s.hasher.Hash(r.Context(), req.Password)
	switch {
	case errors.Is(err, password.ErrEmptyPassword), errors.Is(err, password.ErrPasswordTooLong):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case err != nil:
		writeError(w, r, s.logger, err)
	default:
		writeJSON(w, http.StatusOK, hashResponse{Hash: hash})
	}
}

type verifyRequest struct {
	Password string `json:"password"`
	Hash     string `json:"hash"`
}

type verifyResponse struct {
	Match bool `json:"match"`
}

func (s *Service) verifyPassword(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	match, err := s.hasher.Verify(r.Context(), req.Password, req.Hash)
	switch {
	case errors.Is(err, password.ErrInvalidHash):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: password.ErrInvalidHash.Error()})
	case err != nil:
		writeError(w, r, s.logger, err)
	default:
		writeJSON(w, http.StatusOK, verifyResponse{Match: match})
	}
}

type idResponse struct {
	ID string `json:"id"`
}

func (s *Service) newID(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, idResponse{ID: password.NewID()})
}
