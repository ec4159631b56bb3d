// Package pkg, projede paylaşılan utility'leri barındırır.
// Bu dosya domain-level error tanımlarını içerir.
//
// Service katmanı bu sentinel'leri fmt.Errorf("%w: ...") ile sarar,
// handler katmanı errors.Is ile yakalayıp HTTP status code'a çevirir:
//
//	return fmt.Errorf("%w: Server value error", pkg.ErrBadRequest)
package pkg

import "errors"

// Domain-level error'lar.
//
// ErrUnauthorized → "Unauthenticated" (401): korumalı bir filtre kimlik doğrulaması olmadan istendi.
// ErrBadRequest   → "Validation" (400): parametre parse edilemedi veya kayıt bulunamadı.
var (
	ErrNotFound      = errors.New("not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrAlreadyExists = errors.New("already exists")
	ErrBadRequest    = errors.New("bad request")
	ErrInternal      = errors.New("internal error")
)
