package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/fesikdev/site/internal/upload"
)

// uploadErrorMessage translates upload failures into form messages.
func uploadErrorMessage(err error) string {
	switch {
	case errors.Is(err, upload.ErrExtensionNotAllowed):
		return "Файл с таким расширением не поддерживается"
	case errors.Is(err, upload.ErrFileTooLarge):
		return "Файл слишком большой"
	default:
		return "Не удалось сохранить файл"
	}
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

// fieldErrors maps binding validation failures to per-field messages for
// form re-rendering.
func fieldErrors(err error) map[string]string {
	out := map[string]string{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["form"] = "Проверьте правильность заполнения формы"
		return out
	}

	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			out[field] = "Обязательное поле"
		case "email":
			out[field] = "Некорректный email"
		case "min":
			out[field] = fmt.Sprintf("Минимальная длина — %s символов", fe.Param())
		case "max":
			out[field] = fmt.Sprintf("Максимальная длина — %s символов", fe.Param())
		case "gt":
			out[field] = fmt.Sprintf("Значение должно быть больше %s", fe.Param())
		case "oneof":
			out[field] = "Недопустимое значение"
		default:
			out[field] = "Некорректное значение"
		}
	}
	return out
}

// flash stores a one-time notice shown after the next redirect.
func flash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	_ = session.Save()
}

// takeFlashes drains pending flash messages.
func takeFlashes(c *gin.Context) []string {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) > 0 {
		_ = session.Save()
	}

	messages := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}
