//go:build wireinject
// +build wireinject

package di

import (
	"log/slog"

	"github.com/google/wire"

	"msgtags/internal/chat/handler"
	"msgtags/internal/chat/service"
	"msgtags/internal/config"
	"msgtags/internal/metrics"
)

// InitializeChatService is the injector; wire generates the body in wire_gen.go.
func InitializeChatService(cfg *config.Config, log *slog.Logger) (*Application, func(), error) {
	wire.Build(
		metrics.New,
		ProvideMessageRepository,
		ProvideTagAudit,
		service.NewChatService,
		service.NewTagManager,
		service.NewTagQueryEngine,
		handler.NewChatHandler,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil, nil
}
