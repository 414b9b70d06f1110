package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/bestbuddies/grooming-booking/internal/api/handlers"
	"github.com/bestbuddies/grooming-booking/internal/domain"
)

// Заголовки, которые выставляет шлюз перед сервисом
const (
	HeaderActorID   = "X-Actor-ID"
	HeaderActorRole = "X-Actor-Role"
)

const (
	msgMissingActor = "отсутствует идентификатор пользователя"
	msgUnknownRole  = "неизвестная роль пользователя"
	msgAdminOnly    = "операция доступна только администратору"
)

type contextKey string

const actorKey contextKey = "actor"

// Auth извлекает актора из заголовков и кладёт его в контекст.
// Роль по умолчанию - customer; клиенту обязателен ID.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(HeaderActorID))
		role := strings.ToLower(strings.TrimSpace(r.Header.Get(HeaderActorRole)))
		if role == "" {
			role = domain.ActorCustomer
		}

		switch role {
		case domain.ActorCustomer, domain.ActorAdmin:
		default:
			handlers.RespondUnauthorized(w, msgUnknownRole)
			return
		}
		if id == "" {
			handlers.RespondUnauthorized(w, msgMissingActor)
			return
		}

		ctx := WithActor(r.Context(), domain.Actor{ID: id, Kind: role})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly пропускает только администраторов; ставится после Auth
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := GetActor(r.Context())
		if !ok {
			handlers.RespondUnauthorized(w, msgMissingActor)
			return
		}
		if actor.Kind != domain.ActorAdmin {
			handlers.RespondForbidden(w, msgAdminOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithActor кладёт актора в контекст
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// GetActor возвращает актора из контекста
func GetActor(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(domain.Actor)
	return actor, ok
}
