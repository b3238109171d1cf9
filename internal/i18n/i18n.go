// Package i18n provides internationalization support for the rate service.
// It handles translation of user-facing error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (Spanish, the
	// storefront language of the carrier's market).
	DefaultLocale = "es"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"es": {
			"error.invalid_request":          "Solicitud inválida",
			"error.invalid_request_body":     "Cuerpo de la solicitud inválido",
			"error.internal_error":           "Ocurrió un error inesperado",
			"error.unauthorized":             "No autorizado",
			"error.api_key_required":         "Se requiere una clave de API",
			"error.invalid_api_key":          "Clave de API inválida",
			"error.invalid_token":            "Token inválido o expirado",
			"error.token_required":           "Se requiere un token de autenticación",
			"error.not_found":                "No encontrado",
			"error.rate_limit_exceeded":      "Demasiadas solicitudes, intente de nuevo más tarde",
			"error.timeout":                  "Tiempo de espera agotado",
			"error.validation.items":         "items: se requiere al menos un artículo",
			"error.validation.destination":   "destination: se requiere el país de destino",
			"error.validation.variant":       "variant: método de envío desconocido",
			"error.validation.settings":      "settings: configuración inválida",
		},
		"en": {
			"error.invalid_request":          "Invalid request",
			"error.invalid_request_body":     "Invalid request body",
			"error.internal_error":           "An unexpected error occurred",
			"error.unauthorized":             "Unauthorized",
			"error.api_key_required":         "API key is required",
			"error.invalid_api_key":          "Invalid API key",
			"error.invalid_token":            "Invalid or expired token",
			"error.token_required":           "Authentication token is required",
			"error.not_found":                "Not found",
			"error.rate_limit_exceeded":      "Too many requests, please try again later",
			"error.timeout":                  "Request timed out",
			"error.validation.items":         "items: at least one line item is required",
			"error.validation.destination":   "destination: country is required",
			"error.validation.variant":       "variant: unknown shipping method",
			"error.validation.settings":      "settings: invalid configuration",
		},
	}
}
