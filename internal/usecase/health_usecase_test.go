package usecase_test

import (
	"context"
	"errors"
	"testing"

	"cvhub-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestHealthUsecase_Check(t *testing.T) {
	ok := usecase.PingFunc(func(context.Context) error { return nil })
	down := usecase.PingFunc(func(context.Context) error { return errors.New("dial tcp: refused") })

	t.Run("Should report ok when every dependency answers", func(t *testing.T) {
		uc := usecase.NewHealthUsecase(map[string]usecase.Pinger{"database": ok, "redis": nil})

		result := uc.Check(context.Background())

		assert.Equal(t, map[string]string{"status": "ok", "database": "ok", "redis": "disabled"}, result)
	})

	t.Run("Should report degraded without leaking the cause", func(t *testing.T) {
		uc := usecase.NewHealthUsecase(map[string]usecase.Pinger{"database": down, "redis": ok})

		result := uc.Check(context.Background())

		assert.Equal(t, "degraded", result["status"])
		assert.Equal(t, "unavailable", result["database"])
		assert.Equal(t, "ok", result["redis"])
	})
}
