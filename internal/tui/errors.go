// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-env-keeper/internal/service"
	"github.com/MKhiriev/go-env-keeper/models"
)

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}

func unlockErrorMessage(err error) string {
	if errors.Is(err, service.ErrWrongPassword) {
		return "Неверный мастер-пароль"
	}
	return err.Error()
}

func diffErrorMessage(err error) string {
	if errors.Is(err, service.ErrPromotionNotAllowed) {
		return "Значения совпадают, переносить нечего"
	}
	if errors.Is(err, service.ErrVaultLocked) {
		return "Хранилище заблокировано"
	}
	var promotionErr *service.PromotionError
	if errors.As(err, &promotionErr) {
		return fmt.Sprintf("не удалось перенести %s: %v", promotionErr.Key, promotionErr.Err)
	}
	return err.Error()
}

func syncOutcomeMessage(outcome models.SyncOutcome, err error) string {
	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		return errorStyle.Render("Синхронизация недоступна: выполните envkeeper login")
	case err != nil && !errors.Is(err, service.ErrSync):
		return errorStyle.Render("Синхронизация не выполнена. " + humanizeServerUnavailableError(err))
	case len(outcome.Errors) > 0:
		return errorStyle.Render("Ошибка синхронизации: " + outcome.ErrorMessage())
	case outcome.Conflicts > 0:
		return fmt.Sprintf("Синхронизация завершена, конфликтов: %d (p: разрешить)", outcome.Conflicts)
	default:
		return fmt.Sprintf("Синхронизация завершена: отправлено %d, получено %d", outcome.Pushed, outcome.Pulled)
	}
}
